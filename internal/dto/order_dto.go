package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductId string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	Id                string              `json:"id"`
	Email             string              `json:"email,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	ItemCount         int                 `json:"item_count"`
	Total             decimal.Decimal     `json:"total"`
	Status            string              `json:"status"`
	Progress          int                 `json:"progress"`
	Cancellable       bool                `json:"cancellable"`
	CreatedAt         time.Time           `json:"created_at"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
}

type OrderStatsResponse struct {
	TotalOrders int             `json:"total_orders"`
	TotalItems  int             `json:"total_items"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

type OrderHistoryResponse struct {
	Stats  OrderStatsResponse `json:"stats"`
	Orders []OrderResponse    `json:"orders"`
}

type ReorderResponse struct {
	OrderId  string   `json:"order_id"`
	Added    []string `json:"added"`
	Skipped  []string `json:"skipped"`
	CartSize int      `json:"cart_size"`
}
