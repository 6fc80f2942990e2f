package controller

import (
	"techmart-be/internal/dto"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
	UpdateFilters(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	h := r.Group("/session")
	h.Use(sessionMiddleware)
	h.Get("", c.Show)
	h.Put("/filters", c.UpdateFilters)
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Snapshot(ctx.UserContext(), serverutils.CurrentSession(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) UpdateFilters(ctx *fiber.Ctx) error {
	var req dto.UpdateFiltersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetFilters(ctx.UserContext(), serverutils.CurrentSession(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update filters", res))
}
