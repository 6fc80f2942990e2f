package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/pkg/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *Store {
	return NewSeededStore(catalog.DemoProducts(time.Now()))
}

func TestFindAllKeepsCatalogOrder(t *testing.T) {
	repo := NewProductRepository(seeded())

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, "P001", products[0].Id)
	assert.Equal(t, "P008", products[7].Id)
}

func TestCreateAppendsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(seeded())

	p := &entity.Product{Id: "P009", Name: "Yoga Mat", Category: entity.CategorySports, Price: decimal.NewFromInt(30)}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, 1, p.Version)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 9, count)

	all, _ := repo.FindAll(ctx)
	assert.Equal(t, "P009", all[len(all)-1].Id)

	err = repo.Create(ctx, &entity.Product{Id: "P009"})
	assert.ErrorIs(t, err, entity.ErrDuplicateProduct)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(seeded())

	p, err := repo.FindById(ctx, "P003")
	require.NoError(t, err)
	p.Price = decimal.RequireFromString("99.99")

	require.NoError(t, repo.Update(ctx, p))
	assert.Equal(t, 2, p.Version)

	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, 8)
	assert.Equal(t, "P003", all[2].Id)
	assert.True(t, all[2].Price.Equal(decimal.RequireFromString("99.99")))
}

func TestUpdateDetectsStaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(seeded())

	first, _ := repo.FindById(ctx, "P001")
	second, _ := repo.FindById(ctx, "P001")

	first.Stock = 1
	require.NoError(t, repo.Update(ctx, first))

	second.Stock = 2
	assert.ErrorIs(t, repo.Update(ctx, second), entity.ErrVersionConflict)
}

func TestUpdateMissing(t *testing.T) {
	repo := NewProductRepository(NewStore())
	err := repo.Update(context.Background(), &entity.Product{Id: "P404"})
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(seeded())

	p, _ := repo.FindById(ctx, "P001")
	p.Stock = 0
	p.Specs[0] = "changed"

	again, _ := repo.FindById(ctx, "P001")
	assert.Equal(t, 15, again.Stock)
	assert.Equal(t, "M2 Pro Chip", again.Specs[0])
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(seeded())

	require.NoError(t, repo.Delete(ctx, "P004"))
	p, err := repo.FindById(ctx, "P004")
	require.NoError(t, err)
	assert.Nil(t, p)

	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, 7)
	assert.Equal(t, "P005", all[3].Id)

	assert.ErrorIs(t, repo.Delete(ctx, "P004"), entity.ErrProductNotFound)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &entity.Product{Id: fmt.Sprintf("P%03d", i), Price: decimal.NewFromInt(1)})
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 50, count)
}
