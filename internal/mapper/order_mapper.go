package mapper

import (
	"sort"

	"techmart-be/internal/entity"
	"techmart-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	rows := append([]model.OrderItem(nil), o.Items...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	items := make([]entity.OrderItem, len(rows))
	for i, it := range rows {
		items[i] = entity.OrderItem{
			ProductId: it.ProductId,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}

	return &entity.Order{
		Id:                o.Id,
		SessionId:         o.SessionId,
		Email:             o.Email,
		Items:             items,
		Total:             o.Total,
		Status:            entity.OrderStatus(o.Status),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	items := make([]model.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = model.OrderItem{
			OrderId:   o.Id,
			Position:  i,
			ProductId: it.ProductId,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}

	return &model.Order{
		Id:                o.Id,
		SessionId:         o.SessionId,
		Email:             o.Email,
		Total:             o.Total,
		Status:            string(o.Status),
		Items:             items,
		EstimatedDelivery: o.EstimatedDelivery,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
