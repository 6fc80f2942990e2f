package mapper

import (
	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
)

func OrderItemsToResponse(items []entity.OrderItem) []dto.OrderItemResponse {
	res := make([]dto.OrderItemResponse, len(items))
	for i, it := range items {
		res[i] = dto.OrderItemResponse{
			ProductId: it.ProductId,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		}
	}
	return res
}

func OrderToResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Id:                o.Id,
		Email:             o.Email,
		Items:             OrderItemsToResponse(o.Items),
		ItemCount:         o.ItemCount(),
		Total:             o.Total,
		Status:            string(o.Status),
		Progress:          o.Status.Progress(),
		Cancellable:       o.Status.Cancellable(),
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func OrdersToResponse(orders []*entity.Order) []dto.OrderResponse {
	res := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = OrderToResponse(o)
	}
	return res
}

func OrderToAdminResponse(o *entity.Order) dto.AdminOrderResponse {
	return dto.AdminOrderResponse{OrderResponse: OrderToResponse(o), SessionId: o.SessionId}
}

func OrdersToAdminResponse(orders []*entity.Order) []dto.AdminOrderResponse {
	res := make([]dto.AdminOrderResponse, len(orders))
	for i, o := range orders {
		res[i] = OrderToAdminResponse(o)
	}
	return res
}

func LogToListResponse(l logger.LogEntry) dto.LogListResponse {
	return dto.LogListResponse{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Timestamp: l.Timestamp,
	}
}

func LogToDetailResponse(l *logger.LogEntry) *dto.LogDetailResponse {
	if l == nil {
		return nil
	}
	return &dto.LogDetailResponse{LogListResponse: LogToListResponse(*l), Details: l.Details}
}
