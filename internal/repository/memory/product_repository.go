package memory

import (
	"context"
	"fmt"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/internal/repository/contract"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) contract.ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.store.productsMu.Lock()
	defer r.store.productsMu.Unlock()

	if _, exists := r.store.products[product.Id]; exists {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateProduct, product.Id)
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	if product.Version == 0 {
		product.Version = 1
	}

	r.store.products[product.Id] = product.Clone()
	r.store.catalog = append(r.store.catalog, product.Id)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.store.productsMu.Lock()
	defer r.store.productsMu.Unlock()

	current, ok := r.store.products[product.Id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, product.Id)
	}
	if current.Version != product.Version {
		return fmt.Errorf("%w: %s at version %d", entity.ErrVersionConflict, product.Id, current.Version)
	}

	product.Version++
	product.CreatedAt = current.CreatedAt
	product.UpdatedAt = time.Now()
	r.store.products[product.Id] = product.Clone()
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.store.productsMu.Lock()
	defer r.store.productsMu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	delete(r.store.products, id)
	for i, pid := range r.store.catalog {
		if pid == id {
			r.store.catalog = append(r.store.catalog[:i:i], r.store.catalog[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) FindById(ctx context.Context, id string) (*entity.Product, error) {
	r.store.productsMu.RLock()
	defer r.store.productsMu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	r.store.productsMu.RLock()
	defer r.store.productsMu.RUnlock()

	out := make([]*entity.Product, 0, len(r.store.catalog))
	for _, id := range r.store.catalog {
		out = append(out, r.store.products[id].Clone())
	}
	return out, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	r.store.productsMu.RLock()
	defer r.store.productsMu.RUnlock()
	return int64(len(r.store.products)), nil
}
