package controller

import (
	"io"
	"strings"

	"techmart-be/internal/dto"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxImageBytes = 5 * 1024 * 1024

type IAdminController interface {
	RegisterRoutes(r fiber.Router, adminMiddleware fiber.Handler)

	GetDashboardStats(ctx *fiber.Ctx) error

	GetAllProducts(ctx *fiber.Ctx) error
	UpsertProduct(ctx *fiber.Ctx) error
	DeleteProduct(ctx *fiber.Ctx) error
	UpdateStock(ctx *fiber.Ctx) error
	UpdateImage(ctx *fiber.Ctx) error

	GetAllOrders(ctx *fiber.Ctx) error
	UpdateOrderStatus(ctx *fiber.Ctx) error
	CancelOrder(ctx *fiber.Ctx) error
	NotifyOrder(ctx *fiber.Ctx) error

	GetSystemLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, adminMiddleware fiber.Handler) {
	h := r.Group("/admin")
	h.Use(adminMiddleware)

	h.Get("/dashboard", c.GetDashboardStats)

	// Products
	h.Get("/products", c.GetAllProducts)
	h.Post("/products", c.UpsertProduct)
	h.Put("/products/:id", c.UpsertProduct)
	h.Delete("/products/:id", c.DeleteProduct)
	h.Put("/products/:id/stock", c.UpdateStock)
	h.Put("/products/:id/image", c.UpdateImage)

	// Orders
	h.Get("/orders", c.GetAllOrders)
	h.Put("/orders/:id/status", c.UpdateOrderStatus)
	h.Post("/orders/:id/cancel", c.CancelOrder)
	h.Post("/orders/:id/notify", c.NotifyOrder)

	// System logs
	h.Get("/logs", c.GetSystemLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardStats(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *adminController) GetAllProducts(ctx *fiber.Ctx) error {
	res, err := c.service.ListProducts(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Products list", res))
}

func (c *adminController) UpsertProduct(ctx *fiber.Ctx) error {
	var req dto.UpsertProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if id := ctx.Params("id"); id != "" {
		req.Id = id
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertProduct(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	if res.Created {
		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Product created", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Product updated", res))
}

func (c *adminController) DeleteProduct(ctx *fiber.Ctx) error {
	if err := c.service.DeleteProduct(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Product deleted", nil))
}

func (c *adminController) UpdateStock(ctx *fiber.Ctx) error {
	var req dto.UpdateStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStock(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stock updated", res))
}

// UpdateImage accepts a multipart "file" upload, or JSON with a symbol or URL.
func (c *adminController) UpdateImage(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := ctx.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing file")
		}
		if fh.Size > maxImageBytes {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image exceeds 5MB")
		}

		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
		if err != nil {
			return err
		}

		res, err := c.service.UploadImage(ctx.UserContext(), id, data)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Image uploaded", res))
	}

	var req dto.SetImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetImageReference(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image updated", res))
}

func (c *adminController) GetAllOrders(ctx *fiber.Ctx) error {
	var req dto.AdminOrderListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.service.ListOrders(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Orders list", res))
}

func (c *adminController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateOrderStatus(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order status updated", res))
}

func (c *adminController) CancelOrder(ctx *fiber.Ctx) error {
	res, err := c.service.CancelOrder(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order cancelled", res))
}

func (c *adminController) NotifyOrder(ctx *fiber.Ctx) error {
	var req dto.NotifyOrderRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.NotifyOrder(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order notification processed", res))
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	var req dto.LogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.service.GetSystemLogs(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Log detail", res))
}
