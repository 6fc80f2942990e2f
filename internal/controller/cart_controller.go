package controller

import (
	"techmart-be/internal/dto"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	SetQuantity(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	h := r.Group("/cart")
	h.Use(sessionMiddleware)
	h.Get("", c.Show)
	h.Post("/items", c.AddItem)
	h.Put("/items/:productId", c.SetQuantity)
	h.Delete("/items/:productId", c.RemoveItem)
	h.Post("/checkout", c.Checkout)
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.View(ctx.UserContext(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cart", res))
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.UserContext(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Added to cart", res))
}

func (c *cartController) SetQuantity(ctx *fiber.Ctx) error {
	var req dto.SetCartQuantityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.SetQuantity(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("productId"), req.Quantity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Cart updated", res))
}

func (c *cartController) RemoveItem(ctx *fiber.Ctx) error {
	res, err := c.service.Remove(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("productId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Removed from cart", res))
}

func (c *cartController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.UserContext(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order placed", res))
}
