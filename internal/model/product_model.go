package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductReview struct {
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	Id          string                             `gorm:"type:varchar(16);primaryKey"`
	Name        string                             `gorm:"type:varchar(255);not null"`
	Category    string                             `gorm:"type:varchar(32);not null;index"`
	Price       decimal.Decimal                    `gorm:"type:numeric(12,2);not null"`
	Stock       int                                `gorm:"not null;default:0"`
	Image       string                             `gorm:"type:text"`
	Description string                             `gorm:"type:text"`
	Specs       datatypes.JSONSlice[string]        `gorm:"type:jsonb"`
	Rating      float64                            `gorm:"not null;default:4"`
	ReviewCount int                                `gorm:"not null;default:0"`
	Reviews     datatypes.JSONSlice[ProductReview] `gorm:"type:jsonb"`
	Version     int                                `gorm:"not null;default:1"`
	CreatedAt   time.Time                          `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time                          `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
