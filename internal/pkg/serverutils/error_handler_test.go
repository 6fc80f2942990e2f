package serverutils

import (
	"errors"
	"fmt"
	"testing"

	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wrapped not found", fmt.Errorf("%w: P404", entity.ErrProductNotFound), 404},
		{"order not found", entity.ErrOrderNotFound, 404},
		{"log not found", logger.ErrLogNotFound, 404},
		{"stock", fmt.Errorf("%w: P001", entity.ErrInsufficientStock), 409},
		{"version", entity.ErrVersionConflict, 409},
		{"transition", entity.ErrInvalidStatusTransition, 409},
		{"image type", entity.ErrUnsupportedImage, 415},
		{"empty cart", entity.ErrCartEmpty, 400},
		{"quantity", entity.ErrInvalidQuantity, 400},
		{"stock below zero", fmt.Errorf("%w: -1", entity.ErrInvalidStock), 400},
		{"product id", entity.ErrInvalidProductId, 400},
		{"status filter", fmt.Errorf("%w: Lost", entity.ErrInvalidOrderStatus), 400},
		{"validation", &ValidationError{Fields: map[string]string{"Name": "is required"}}, 400},
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "tea"), 418},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	assert.NoError(t, ValidateRequest(req{Name: "x"}))

	err := ValidateRequest(req{Email: "nope"})
	var ve *ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "is required", ve.Fields["Name"])
		assert.Equal(t, "must be a valid email", ve.Fields["Email"])
	}
}
