package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/memory"
	"techmart-be/internal/repository/unitofwork"
	adminEvents "techmart-be/pkg/admin/events"
	pkgCatalog "techmart-be/pkg/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*Manager, unitofwork.RepositoryFactory) {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "admin.log"))
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewSeededStore(pkgCatalog.DemoProducts(time.Now())))
	return NewManager(log, adminEvents.NewBusPublisher(log)), factory
}

func validRequest() dto.UpsertProductRequest {
	return dto.UpsertProductRequest{
		Name:        "Trail Runner",
		Category:    "Footwear",
		Price:       decimal.RequireFromString("89.90"),
		Stock:       12,
		Description: "Grippy outsole.",
		SpecsText:   "Waterproof\n\n  Vibram sole  \n",
	}
}

func TestNextProductId(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty", want: "P001"},
		{name: "after gap", ids: []string{"P001", "P007"}, want: "P008"},
		{name: "ignores foreign ids", ids: []string{"SKU-9", "P002"}, want: "P003"},
		{name: "beyond three digits", ids: []string{"P999"}, want: "P1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var products []*entity.Product
			for _, id := range tt.ids {
				products = append(products, &entity.Product{Id: id})
			}
			assert.Equal(t, tt.want, NextProductId(products))
		})
	}
}

func TestParseSpecs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseSpecs(" a \n\n b\n"))
	assert.Empty(t, ParseSpecs(""))
}

func TestUpsertNewProductGrowsCatalog(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	p, created, err := m.Upsert(ctx, factory.NewUnitOfWork(ctx), validRequest())
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, "P009", p.Id)
	assert.Equal(t, entity.DefaultProductImage, p.Image)
	assert.Equal(t, entity.DefaultProductRating, p.Rating)
	assert.Zero(t, p.ReviewCount)
	assert.Equal(t, []string{"Waterproof", "Vibram sole"}, p.Specs)

	count, _ := factory.NewUnitOfWork(ctx).ProductRepository().Count(ctx)
	assert.EqualValues(t, 9, count)
}

func TestUpsertExistingKeepsSize(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	req := validRequest()
	req.Id = "P003"
	req.Image = ""

	p, created, err := m.Upsert(ctx, factory.NewUnitOfWork(ctx), req)
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, "Trail Runner", p.Name)
	assert.Equal(t, 334, p.ReviewCount, "reviews survive an edit")
	assert.Equal(t, "assets/products/nike-air-max-270.webp", p.Image, "blank image keeps the old one")

	count, _ := factory.NewUnitOfWork(ctx).ProductRepository().Count(ctx)
	assert.EqualValues(t, 8, count)
}

func TestUpsertStaleVersion(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	stale := 0
	req := validRequest()
	req.Id = "P001"
	req.ExpectedVersion = &stale

	_, _, err := m.Upsert(ctx, factory.NewUnitOfWork(ctx), req)
	assert.ErrorIs(t, err, entity.ErrVersionConflict)
}

func TestUpsertValidation(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	badPrice := validRequest()
	badPrice.Price = decimal.Zero
	_, _, err := m.Upsert(ctx, factory.NewUnitOfWork(ctx), badPrice)
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)

	badCategory := validRequest()
	badCategory.Category = "Garden"
	_, _, err = m.Upsert(ctx, factory.NewUnitOfWork(ctx), badCategory)
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)

	badStock := validRequest()
	badStock.Stock = -2
	_, _, err = m.Upsert(ctx, factory.NewUnitOfWork(ctx), badStock)
	assert.ErrorIs(t, err, entity.ErrInvalidStock)

	for _, id := range []string{"../x", "P/1", "a.b", "P 1"} {
		badId := validRequest()
		badId.Id = id
		_, _, err = m.Upsert(ctx, factory.NewUnitOfWork(ctx), badId)
		assert.ErrorIs(t, err, entity.ErrInvalidProductId, id)
	}
}

func TestUpdateStockAndDelete(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	p, err := m.UpdateStock(ctx, factory.NewUnitOfWork(ctx), "P002", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)

	_, err = m.UpdateStock(ctx, factory.NewUnitOfWork(ctx), "P404", 3)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)

	_, err = m.UpdateStock(ctx, factory.NewUnitOfWork(ctx), "P002", -1)
	assert.ErrorIs(t, err, entity.ErrInvalidStock)

	require.NoError(t, m.Delete(ctx, factory.NewUnitOfWork(ctx), "P002"))
	assert.ErrorIs(t, m.Delete(ctx, factory.NewUnitOfWork(ctx), "P002"), entity.ErrProductNotFound)
}

func TestSetImageReturnsPrevious(t *testing.T) {
	ctx := context.Background()
	m, factory := newManager(t)

	p, previous, err := m.SetImage(ctx, factory.NewUnitOfWork(ctx), "P004", "🎧")
	require.NoError(t, err)
	assert.Equal(t, "🎧", p.Image)
	assert.Equal(t, "assets/products/sony-wh-1000xm5.jpg", previous)
}
