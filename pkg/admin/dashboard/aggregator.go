package dashboard

import (
	"context"
	"sort"
	"time"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/unitofwork"

	"github.com/shopspring/decimal"
)

const topProductsLimit = 5

// Aggregator computes the admin analytics view.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats reads the whole catalog and order book. Revenue, daily figures and
// best sellers ignore cancelled orders.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminDashboardStats, error) {
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uow.OrderRepository().FindAll(ctx, contract.OrderFilter{})
	if err != nil {
		return nil, err
	}

	stats := Compute(products, orders)
	stats.GeneratedAt = time.Now().UTC()
	return stats, nil
}

// Compute is the pure part of GetStats.
func Compute(products []*entity.Product, orders []*entity.Order) *dto.AdminDashboardStats {
	stats := &dto.AdminDashboardStats{
		TotalProducts:      len(products),
		TotalOrders:        len(orders),
		TotalRevenue:       decimal.Zero,
		AverageOrderValue:  decimal.Zero,
		OrdersByStatus:     make(map[string]int),
		DailyRevenue:       []dto.DailyRevenue{},
		ProductsByCategory: []dto.CategoryCount{},
		TopProducts:        []dto.TopProduct{},
		LowStock:           []dto.LowStockProduct{},
	}

	daily := make(map[string]*dto.DailyRevenue)
	sold := make(map[string]*dto.TopProduct)
	billable := 0

	for _, o := range orders {
		stats.OrdersByStatus[string(o.Status)]++
		if o.Status == entity.OrderStatusCancelled {
			continue
		}
		billable++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)

		day := o.CreatedAt.UTC().Format("2006-01-02")
		d, ok := daily[day]
		if !ok {
			d = &dto.DailyRevenue{Date: day, Revenue: decimal.Zero}
			daily[day] = d
		}
		d.Revenue = d.Revenue.Add(o.Total)
		d.Orders++

		for _, item := range o.Items {
			t, ok := sold[item.ProductId]
			if !ok {
				t = &dto.TopProduct{ProductId: item.ProductId, Name: item.Name, Revenue: decimal.Zero}
				sold[item.ProductId] = t
			}
			t.UnitsSold += item.Quantity
			t.Revenue = t.Revenue.Add(item.Subtotal())
		}
	}

	if billable > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(billable))).Round(2)
	}

	for _, d := range daily {
		stats.DailyRevenue = append(stats.DailyRevenue, *d)
	}
	sort.Slice(stats.DailyRevenue, func(i, j int) bool { return stats.DailyRevenue[i].Date < stats.DailyRevenue[j].Date })

	for _, t := range sold {
		stats.TopProducts = append(stats.TopProducts, *t)
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		a, b := stats.TopProducts[i], stats.TopProducts[j]
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.ProductId < b.ProductId
	})
	if len(stats.TopProducts) > topProductsLimit {
		stats.TopProducts = stats.TopProducts[:topProductsLimit]
	}

	categories := make(map[string]int)
	for _, p := range products {
		categories[string(p.Category)]++
		if p.Stock <= entity.LowStockThreshold {
			stats.LowStock = append(stats.LowStock, dto.LowStockProduct{ProductId: p.Id, Name: p.Name, Stock: p.Stock})
		}
	}
	for c, n := range categories {
		stats.ProductsByCategory = append(stats.ProductsByCategory, dto.CategoryCount{Category: c, Products: n})
	}
	sort.Slice(stats.ProductsByCategory, func(i, j int) bool {
		return stats.ProductsByCategory[i].Category < stats.ProductsByCategory[j].Category
	})
	sort.SliceStable(stats.LowStock, func(i, j int) bool { return stats.LowStock[i].Stock < stats.LowStock[j].Stock })

	return stats
}
