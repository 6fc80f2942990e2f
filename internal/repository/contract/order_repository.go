package contract

import (
	"context"

	"techmart-be/internal/entity"
)

type OrderFilter struct {
	SessionId string
	Status    entity.OrderStatus
	Limit     int
	Offset    int
}

// OrderRepository lists newest orders first.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindById(ctx context.Context, id string) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	Count(ctx context.Context) (int64, error)
}
