package memory

import (
	"context"
	"fmt"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/internal/repository/contract"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) contract.OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.store.ordersMu.Lock()
	defer r.store.ordersMu.Unlock()

	if _, exists := r.store.orders[order.Id]; exists {
		return fmt.Errorf("order %s already exists", order.Id)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = order.CreatedAt

	r.store.orders[order.Id] = order.Clone()
	r.store.placed = append(r.store.placed, order.Id)
	return nil
}

func (r *OrderRepository) FindById(ctx context.Context, id string) (*entity.Order, error) {
	r.store.ordersMu.RLock()
	defer r.store.ordersMu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	return o.Clone(), nil
}

// FindAll walks placement order backwards so the newest order comes first.
func (r *OrderRepository) FindAll(ctx context.Context, filter contract.OrderFilter) ([]*entity.Order, error) {
	r.store.ordersMu.RLock()
	defer r.store.ordersMu.RUnlock()

	out := make([]*entity.Order, 0)
	skipped := 0
	for i := len(r.store.placed) - 1; i >= 0; i-- {
		o := r.store.orders[r.store.placed[i]]
		if filter.SessionId != "" && o.SessionId != filter.SessionId {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, o.Clone())
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	r.store.ordersMu.Lock()
	defer r.store.ordersMu.Unlock()

	o, ok := r.store.orders[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	r.store.ordersMu.RLock()
	defer r.store.ordersMu.RUnlock()
	return int64(len(r.store.orders)), nil
}
