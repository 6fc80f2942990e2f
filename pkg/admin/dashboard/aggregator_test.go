package dashboard

import (
	"testing"
	"time"

	"techmart-be/internal/entity"
	"techmart-be/pkg/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, status entity.OrderStatus, at time.Time, items ...entity.OrderItem) *entity.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return &entity.Order{Id: id, Status: status, CreatedAt: at, Items: items, Total: total}
}

func item(id string, price int64, qty int) entity.OrderItem {
	return entity.OrderItem{ProductId: id, Name: id, UnitPrice: decimal.NewFromInt(price), Quantity: qty}
}

func TestCompute(t *testing.T) {
	day1 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	orders := []*entity.Order{
		order("O1", entity.OrderStatusDelivered, day1, item("P003", 100, 2)),
		order("O2", entity.OrderStatusPending, day2, item("P001", 1000, 1), item("P003", 100, 1)),
		order("O3", entity.OrderStatusCancelled, day2, item("P006", 2500, 4)),
	}
	products := catalog.DemoProducts(day1)

	stats := Compute(products, orders)

	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.True(t, decimal.NewFromInt(1300).Equal(stats.TotalRevenue), stats.TotalRevenue.String())
	assert.True(t, decimal.NewFromInt(650).Equal(stats.AverageOrderValue))
	assert.Equal(t, 1, stats.OrdersByStatus["Cancelled"])

	require.Len(t, stats.DailyRevenue, 2)
	assert.Equal(t, "2024-06-01", stats.DailyRevenue[0].Date)
	assert.True(t, decimal.NewFromInt(1100).Equal(stats.DailyRevenue[1].Revenue))

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "P003", stats.TopProducts[0].ProductId)
	assert.Equal(t, 3, stats.TopProducts[0].UnitsSold)

	require.Len(t, stats.LowStock, 1)
	assert.Equal(t, "P006", stats.LowStock[0].ProductId)

	assert.Equal(t, "Clothing", stats.ProductsByCategory[0].Category)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, nil)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.NotNil(t, stats.TopProducts)
}

func TestTopProductsCapped(t *testing.T) {
	at := time.Now()
	var orders []*entity.Order
	for i, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		orders = append(orders, order(id, entity.OrderStatusPending, at, item(id, 1, i+1)))
	}

	stats := Compute(nil, orders)
	require.Len(t, stats.TopProducts, 5)
	assert.Equal(t, "G", stats.TopProducts[0].ProductId)
}
