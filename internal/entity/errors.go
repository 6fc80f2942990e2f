package entity

import (
	"errors"

	"techmart-be/pkg/store"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrDuplicateProduct        = errors.New("product id already exists")
	ErrCartEmpty               = errors.New("cart is empty")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrInvalidQuantity         = store.ErrInvalidQuantity
	ErrInvalidCategory         = errors.New("unknown category")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrInvalidPrice            = errors.New("price must be greater than zero")
	ErrInvalidStock            = errors.New("stock must not be negative")
	ErrInvalidProductId        = errors.New("product id must be alphanumeric")
	ErrInvalidOrderStatus      = errors.New("unknown order status")
	ErrInvalidSortKey          = errors.New("unknown sort key")
	ErrVersionConflict         = errors.New("product was modified concurrently")
	ErrInvalidStatusTransition = errors.New("order status transition not allowed")
	ErrUnsupportedImage        = errors.New("unsupported image type")
	ErrImageNotFound           = errors.New("image not found")
	ErrNoRecipient             = errors.New("no email address for order")
)
