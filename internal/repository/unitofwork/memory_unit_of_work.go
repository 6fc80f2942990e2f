package unitofwork

import (
	"context"
	"fmt"

	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/memory"
)

// MemoryUnitOfWork holds the store lock between Begin and Commit/Rollback.
// Rollback restores the snapshot taken at Begin.
type MemoryUnitOfWork struct {
	store    *memory.Store
	snapshot *memory.Snapshot
}

func NewMemoryUnitOfWork(store *memory.Store) UnitOfWork {
	return &MemoryUnitOfWork{store: store}
}

func (u *MemoryUnitOfWork) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return fmt.Errorf("transaction already started")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.Lock()
	u.snapshot = u.store.Snapshot()
	return nil
}

func (u *MemoryUnitOfWork) Commit() error {
	if u.snapshot == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.snapshot = nil
	u.store.Unlock()
	return nil
}

func (u *MemoryUnitOfWork) Rollback() error {
	if u.snapshot == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.Restore(u.snapshot)
	u.snapshot = nil
	u.store.Unlock()
	return nil
}

func (u *MemoryUnitOfWork) ProductRepository() contract.ProductRepository {
	return memory.NewProductRepository(u.store)
}

func (u *MemoryUnitOfWork) OrderRepository() contract.OrderRepository {
	return memory.NewOrderRepository(u.store)
}
