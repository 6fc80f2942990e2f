package service

import (
	"context"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/pkg/imageref"
	"techmart-be/pkg/store"

	"github.com/shopspring/decimal"
)

// productView renders products for the API, resolving image references.
type productView struct {
	resolver *imageref.Resolver
	logger   logger.ILogger
}

func newProductView(resolver *imageref.Resolver, log logger.ILogger) productView {
	return productView{resolver: resolver, logger: log}
}

func (v productView) image(ctx context.Context, ref string) imageref.View {
	view, err := v.resolver.Resolve(ctx, ref)
	if err != nil {
		v.logger.Warn("CATALOG", "Failed to resolve image", map[string]interface{}{"ref": ref, "error": err.Error()})
	}
	return view
}

func (v productView) summary(ctx context.Context, p *entity.Product, cart store.Cart) dto.ProductSummaryResponse {
	specs := p.Specs
	if specs == nil {
		specs = []string{}
	}
	return dto.ProductSummaryResponse{
		Id:          p.Id,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		Image:       v.image(ctx, p.Image),
		Description: p.Description,
		Specs:       specs,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		InCart:      cart.Quantity(p.Id),
	}
}

func (v productView) detail(ctx context.Context, p *entity.Product, cart store.Cart) *dto.ProductDetailResponse {
	reviews := make([]dto.ReviewResponse, 0, len(p.Reviews))
	// newest first
	for i := len(p.Reviews) - 1; i >= 0; i-- {
		r := p.Reviews[i]
		reviews = append(reviews, dto.ReviewResponse{Rating: r.Rating, Text: r.Text, CreatedAt: r.CreatedAt})
	}
	return &dto.ProductDetailResponse{
		ProductSummaryResponse: v.summary(ctx, p, cart),
		Reviews:                reviews,
		Version:                p.Version,
		UpdatedAt:              p.UpdatedAt,
	}
}

func indexProducts(products []*entity.Product) map[string]*entity.Product {
	byId := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byId[p.Id] = p
	}
	return byId
}

func priceLookup(byId map[string]*entity.Product) store.PriceLookup {
	return func(productId string) (decimal.Decimal, bool) {
		p, ok := byId[productId]
		if !ok {
			return decimal.Zero, false
		}
		return p.Price, true
	}
}
