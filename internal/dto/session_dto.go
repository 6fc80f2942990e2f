package dto

import "github.com/shopspring/decimal"

type FlashResponse struct {
	PurchaseSuccessful bool   `json:"purchase_successful"`
	LastOrderId        string `json:"last_order_id,omitempty"`
	Message            string `json:"message,omitempty"`
}

type SessionResponse struct {
	SessionId string          `json:"session_id"`
	CartCount int             `json:"cart_count"`
	CartTotal decimal.Decimal `json:"cart_total"`
	Filters   FiltersDto      `json:"filters"`
	Flash     FlashResponse   `json:"flash"`
}
