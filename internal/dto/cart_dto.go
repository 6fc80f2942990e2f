package dto

import (
	"techmart-be/pkg/imageref"

	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	ProductId string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type CartLineResponse struct {
	ProductId string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     imageref.View   `json:"image"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Stock     int             `json:"stock"`
	Available bool            `json:"available"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}

type CheckoutResponse struct {
	OrderId           string              `json:"order_id"`
	Total             decimal.Decimal     `json:"total"`
	Items             []OrderItemResponse `json:"items"`
	Status            string              `json:"status"`
	EstimatedDelivery string              `json:"estimated_delivery"`
}
