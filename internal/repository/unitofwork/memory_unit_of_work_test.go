package unitofwork

import (
	"context"
	"sync"
	"testing"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/internal/repository/memory"
	"techmart-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryRepositoryFactory(memory.NewSeededStore(catalog.DemoProducts(time.Now())))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	p, err := uow.ProductRepository().FindById(ctx, "P001")
	require.NoError(t, err)
	p.Stock = 0
	require.NoError(t, uow.ProductRepository().Update(ctx, p))
	require.NoError(t, uow.OrderRepository().Create(ctx, &entity.Order{Id: "ROLLBACK", Status: entity.OrderStatusPending}))

	require.NoError(t, uow.Rollback())

	check := factory.NewUnitOfWork(ctx)
	p, err = check.ProductRepository().FindById(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Stock)

	o, err := check.OrderRepository().FindById(ctx, "ROLLBACK")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestMemoryCommitKeepsState(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryRepositoryFactory(memory.NewSeededStore(catalog.DemoProducts(time.Now())))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ProductRepository().Delete(ctx, "P002"))
	require.NoError(t, uow.Commit())

	count, err := factory.NewUnitOfWork(ctx).ProductRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)
}

func TestMemoryUnitOfWorkMisuse(t *testing.T) {
	ctx := context.Background()
	uow := NewMemoryUnitOfWork(memory.NewStore())

	assert.Error(t, uow.Commit())
	assert.Error(t, uow.Rollback())

	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
}

func TestMemoryTransactionsSerialize(t *testing.T) {
	ctx := context.Background()
	factory := NewMemoryRepositoryFactory(memory.NewSeededStore(catalog.DemoProducts(time.Now())))

	var wg sync.WaitGroup
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := factory.NewUnitOfWork(ctx)
			if err := uow.Begin(ctx); err != nil {
				return
			}
			p, _ := uow.ProductRepository().FindById(ctx, "P001")
			p.Stock--
			if err := uow.ProductRepository().Update(ctx, p); err != nil {
				_ = uow.Rollback()
				return
			}
			_ = uow.Commit()
		}()
	}
	wg.Wait()

	p, err := factory.NewUnitOfWork(ctx).ProductRepository().FindById(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}
