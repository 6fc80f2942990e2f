package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Id                string          `gorm:"type:varchar(8);primaryKey"`
	SessionId         string          `gorm:"type:varchar(64);not null;index"`
	Email             string          `gorm:"type:varchar(255)"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status            string          `gorm:"type:varchar(16);not null;index"`
	Items             []OrderItem     `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
	EstimatedDelivery time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id        uint            `gorm:"primaryKey;autoIncrement"`
	OrderId   string          `gorm:"type:varchar(8);not null;index"`
	Position  int             `gorm:"not null"`
	ProductId string          `gorm:"type:varchar(16);not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
