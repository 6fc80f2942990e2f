package contract

import (
	"context"

	"techmart-be/internal/entity"
)

// ProductRepository is the catalog store. FindAll returns products in
// catalog order (creation order); FindById returns nil, nil when absent.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// Update writes product when its Version matches the stored one and
	// bumps Version on success.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
