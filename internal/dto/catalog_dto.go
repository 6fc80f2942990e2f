package dto

import (
	"time"

	"techmart-be/pkg/imageref"

	"github.com/shopspring/decimal"
)

type CatalogQuery struct {
	Category *string `query:"category"`
	Search   *string `query:"q"`
	Sort     *string `query:"sort"`
}

type FiltersDto struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	Sort     string `json:"sort"`
}

type UpdateFiltersRequest struct {
	Category string `json:"category"`
	Search   string `json:"search" validate:"max=100"`
	Sort     string `json:"sort" validate:"omitempty,oneof=name price_asc price_desc rating"`
}

type ProductSummaryResponse struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"in_stock"`
	Image       imageref.View   `json:"image"`
	Description string          `json:"description"`
	Specs       []string        `json:"specs"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	InCart      int             `json:"in_cart"`
}

type ReviewResponse struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductDetailResponse struct {
	ProductSummaryResponse
	Reviews   []ReviewResponse `json:"reviews"`
	Version   int              `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CatalogResponse struct {
	Filters    FiltersDto               `json:"filters"`
	Categories []string                 `json:"categories"`
	Total      int                      `json:"total"`
	Products   []ProductSummaryResponse `json:"products"`
}

type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"max=2000"`
}

type CategoriesResponse struct {
	Present []string `json:"present"`
	All     []string `json:"all"`
}
