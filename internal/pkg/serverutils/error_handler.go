package serverutils

import (
	"errors"

	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	var fe *fiber.Error
	var ve *ValidationError

	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrOrderNotFound),
		errors.Is(err, entity.ErrImageNotFound),
		errors.Is(err, logger.ErrLogNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrDuplicateProduct),
		errors.Is(err, entity.ErrVersionConflict),
		errors.Is(err, entity.ErrInsufficientStock),
		errors.Is(err, entity.ErrInvalidStatusTransition):
		return fiber.StatusConflict
	case errors.Is(err, entity.ErrUnsupportedImage):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, entity.ErrCartEmpty),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrInvalidRating),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidStock),
		errors.Is(err, entity.ErrInvalidProductId),
		errors.Is(err, entity.ErrInvalidOrderStatus),
		errors.Is(err, entity.ErrInvalidSortKey),
		errors.Is(err, entity.ErrNoRecipient):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := StatusFor(err)
		message := err.Error()
		if code == fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
			message = "Internal server error"
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
