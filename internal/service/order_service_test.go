package service

import (
	"context"
	"testing"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/pkg/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkout(t *testing.T, f *fixture, sess *store.Session, items map[string]int) string {
	t.Helper()
	for id, qty := range items {
		sess.Cart.Items[id] = qty
	}
	res, err := f.cart.Checkout(context.Background(), sess, &dto.CheckoutRequest{})
	require.NoError(t, err)
	return res.OrderId
}

func TestListForSessionStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sess := newSession("s1")

	first := checkout(t, f, sess, map[string]int{"P005": 2})
	second := checkout(t, f, sess, map[string]int{"P003": 1})
	checkout(t, f, newSession("s2"), map[string]int{"P001": 1})

	_, err := f.orders.Cancel(ctx, sess, first)
	require.NoError(t, err)

	res, err := f.orders.ListForSession(ctx, sess)
	require.NoError(t, err)

	require.Len(t, res.Orders, 2)
	assert.Equal(t, second, res.Orders[0].Id)
	assert.Equal(t, 2, res.Stats.TotalOrders)
	assert.Equal(t, 3, res.Stats.TotalItems)
	assert.True(t, decimal.RequireFromString("129.99").Equal(res.Stats.TotalSpent), res.Stats.TotalSpent.String())
	assert.Equal(t, 0, res.Orders[0].Progress)
	assert.Equal(t, -1, res.Orders[1].Progress)
}

func TestShopperCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sess := newSession("s1")

	id := checkout(t, f, sess, map[string]int{"P006": 3})
	assert.Equal(t, 5, f.stock(t, "P006"))

	res, err := f.orders.Cancel(ctx, sess, id)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", res.Status)
	assert.False(t, res.Cancellable)
	assert.Equal(t, 8, f.stock(t, "P006"))

	_, err = f.orders.Cancel(ctx, sess, id)
	assert.ErrorIs(t, err, entity.ErrInvalidStatusTransition)
	assert.Equal(t, 8, f.stock(t, "P006"))
}

func TestOrdersAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := newSession("owner")
	id := checkout(t, f, owner, map[string]int{"P001": 1})

	stranger := newSession("stranger")
	_, err := f.orders.Show(ctx, stranger, id)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
	_, err = f.orders.Reorder(ctx, stranger, id)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
	_, err = f.orders.Cancel(ctx, stranger, id)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
}

func TestReorderSkipsMissingProducts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sess := newSession("s1")
	id := checkout(t, f, sess, map[string]int{"P001": 1, "P002": 2})

	require.NoError(t, f.admin.DeleteProduct(ctx, "P002"))
	sess.Cart.Items["P001"] = 1

	res, err := f.orders.Reorder(ctx, sess, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"P001"}, res.Added)
	assert.Equal(t, []string{"P002"}, res.Skipped)
	assert.Equal(t, 2, res.CartSize)
	assert.Equal(t, 2, sess.Cart.Quantity("P001"))
}
