package mapper

import (
	"techmart-be/internal/entity"
	"techmart-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	reviews := make([]entity.Review, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = entity.Review{Rating: r.Rating, Text: r.Text, CreatedAt: r.CreatedAt}
	}

	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    entity.Category(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Description: p.Description,
		Specs:       append([]string{}, p.Specs...),
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Reviews:     reviews,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	reviews := make([]model.ProductReview, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = model.ProductReview{Rating: r.Rating, Text: r.Text, CreatedAt: r.CreatedAt}
	}

	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Description: p.Description,
		Specs:       append([]string{}, p.Specs...),
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Reviews:     reviews,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
