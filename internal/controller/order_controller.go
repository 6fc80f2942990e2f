package controller

import (
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	h := r.Group("/orders")
	h.Use(sessionMiddleware)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Post("/:id/reorder", c.Reorder)
	h.Post("/:id/cancel", c.Cancel)
}

func (c *orderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListForSession(ctx.UserContext(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get orders", res))
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show order", res))
}

func (c *orderController) Reorder(ctx *fiber.Ctx) error {
	res, err := c.service.Reorder(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Items added to cart", res))
}

func (c *orderController) Cancel(ctx *fiber.Ctx) error {
	res, err := c.service.Cancel(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order cancelled", res))
}
