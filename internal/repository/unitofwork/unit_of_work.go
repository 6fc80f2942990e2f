package unitofwork

import (
	"context"

	"techmart-be/internal/repository/contract"
)

// UnitOfWork groups catalog and order writes. Repositories obtained after
// Begin take part in the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	OrderRepository() contract.OrderRepository
}
