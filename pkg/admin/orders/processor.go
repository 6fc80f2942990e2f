package orders

import (
	"context"
	"fmt"

	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/unitofwork"
	adminEvents "techmart-be/pkg/admin/events"
)

// Processor moves orders through their lifecycle.
type Processor struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewProcessor(logger logger.ILogger, publisher adminEvents.Publisher) *Processor {
	return &Processor{
		logger:    logger,
		publisher: publisher,
	}
}

func (p *Processor) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, status string, page, limit int) ([]*entity.Order, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	filter := contract.OrderFilter{Limit: limit, Offset: (page - 1) * limit}
	if status != "" {
		s := entity.OrderStatus(status)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %s", entity.ErrInvalidOrderStatus, status)
		}
		filter.Status = s
	}
	return uow.OrderRepository().FindAll(ctx, filter)
}

// Find loads an order. A non-empty sessionId restricts the lookup to that
// session's orders; other sessions' orders read as not found.
func (p *Processor) Find(ctx context.Context, uow unitofwork.UnitOfWork, id, sessionId string) (*entity.Order, error) {
	order, err := uow.OrderRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || (sessionId != "" && order.SessionId != sessionId) {
		return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	return order, nil
}

// UpdateStatus sets a new status. Moving to Cancelled restores stock via
// Cancel; a cancelled order cannot be reopened.
func (p *Processor) UpdateStatus(ctx context.Context, uow unitofwork.UnitOfWork, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidOrderStatus, status)
	}
	if status == entity.OrderStatusCancelled {
		return p.Cancel(ctx, uow, id, "")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	order, err := p.Find(ctx, uow, id, "")
	if err != nil {
		return nil, err
	}
	previous := order.Status
	if previous == status {
		return order, nil
	}
	if previous == entity.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: %s is cancelled", entity.ErrInvalidStatusTransition, id)
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	order.Status = status
	p.logger.Info("ORDERS", "Order status updated", map[string]interface{}{"order_id": id, "from": previous, "to": status})
	p.publisher.PublishOrderStatusChanged(ctx, order, previous)
	return order, nil
}

// Cancel cancels a Pending or Processing order and puts its quantities back
// into stock for products still in the catalog.
func (p *Processor) Cancel(ctx context.Context, uow unitofwork.UnitOfWork, id, sessionId string) (*entity.Order, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	order, err := p.Find(ctx, uow, id, sessionId)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("%w: %s is %s", entity.ErrInvalidStatusTransition, id, order.Status)
	}

	type restock struct {
		id            string
		before, after int
	}
	var restocked []restock

	products := uow.ProductRepository()
	for _, item := range order.Items {
		product, err := products.FindById(ctx, item.ProductId)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		before := product.Stock
		product.Stock += item.Quantity
		if err := products.Update(ctx, product); err != nil {
			return nil, err
		}
		restocked = append(restocked, restock{id: product.Id, before: before, after: product.Stock})
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, id, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusCancelled
	p.logger.Info("ORDERS", "Order cancelled", map[string]interface{}{"order_id": id, "restocked": len(restocked)})
	p.publisher.PublishOrderCancelled(ctx, order)
	for _, r := range restocked {
		p.publisher.PublishStockUpdated(ctx, r.id, r.before, r.after)
	}
	return order, nil
}
