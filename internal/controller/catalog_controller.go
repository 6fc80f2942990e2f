package controller

import (
	"techmart-be/internal/dto"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	AddReview(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	r.Get("/categories", c.Categories)

	h := r.Group("/products")
	h.Use(sessionMiddleware)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Post("/:id/reviews", c.AddReview)
}

func (c *catalogController) GetAll(ctx *fiber.Ctx) error {
	var query dto.CatalogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.service.List(ctx.UserContext(), serverutils.CurrentSession(ctx), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *catalogController) AddReview(ctx *fiber.Ctx) error {
	var req dto.AddReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddReview(ctx.UserContext(), serverutils.CurrentSession(ctx), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add review", res))
}

func (c *catalogController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.Categories(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get categories", res))
}
