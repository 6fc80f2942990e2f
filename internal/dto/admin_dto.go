package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Products ---

type UpsertProductRequest struct {
	Id              string          `json:"id" validate:"omitempty,alphanum,max=16"`
	Name            string          `json:"name" validate:"required,max=255"`
	Category        string          `json:"category" validate:"required,oneof=Electronics Clothing Footwear Home Sports Books Other"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock" validate:"min=0"`
	Description     string          `json:"description" validate:"required"`
	Image           string          `json:"image"`
	Specs           []string        `json:"specs"`
	SpecsText       string          `json:"specs_text"`
	ExpectedVersion *int            `json:"expected_version"`
}

type UpsertProductResponse struct {
	Product ProductDetailResponse `json:"product"`
	Created bool                  `json:"created"`
}

type UpdateStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

type SetImageRequest struct {
	Symbol string `json:"symbol" validate:"omitempty,max=16"`
	URL    string `json:"url" validate:"omitempty,url"`
}

// --- Orders ---

type AdminOrderListRequest struct {
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type AdminOrderResponse struct {
	OrderResponse
	SessionId string `json:"session_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

type NotifyOrderRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type NotifyOrderResponse struct {
	OrderId string `json:"order_id"`
	Email   string `json:"email"`
	Sent    bool   `json:"sent"`
}

// --- Dashboard ---

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Products int    `json:"products"`
}

type TopProduct struct {
	ProductId string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type LowStockProduct struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

type AdminDashboardStats struct {
	TotalProducts      int               `json:"total_products"`
	TotalOrders        int               `json:"total_orders"`
	TotalRevenue       decimal.Decimal   `json:"total_revenue"`
	AverageOrderValue  decimal.Decimal   `json:"average_order_value"`
	OrdersByStatus     map[string]int    `json:"orders_by_status"`
	DailyRevenue       []DailyRevenue    `json:"daily_revenue"`
	ProductsByCategory []CategoryCount   `json:"products_by_category"`
	TopProducts        []TopProduct      `json:"top_products"`
	LowStock           []LowStockProduct `json:"low_stock"`
	ActiveSessions     int               `json:"active_sessions"`
	GeneratedAt        time.Time         `json:"generated_at"`
}

// --- System logs ---

type LogListRequest struct {
	Level string `query:"level"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

type LogListResponse struct {
	Id        string `json:"id"` // md5 of the log line
	Level     string `json:"level"`
	Module    string `json:"module"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
