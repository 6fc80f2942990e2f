package service

import (
	"context"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/metrics"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/unitofwork"
	"techmart-be/pkg/admin/mapper"
	"techmart-be/pkg/admin/orders"
	"techmart-be/pkg/store"

	"github.com/shopspring/decimal"
)

type IOrderService interface {
	ListForSession(ctx context.Context, session *store.Session) (*dto.OrderHistoryResponse, error)
	Show(ctx context.Context, session *store.Session, id string) (*dto.OrderResponse, error)
	Reorder(ctx context.Context, session *store.Session, id string) (*dto.ReorderResponse, error)
	Cancel(ctx context.Context, session *store.Session, id string) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
	processor  *orders.Processor
	logger     logger.ILogger
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory, processor *orders.Processor, log logger.ILogger) IOrderService {
	return &orderService{
		uowFactory: uowFactory,
		processor:  processor,
		logger:     log,
	}
}

// ListForSession returns the shopper's orders newest first. Cancelled orders
// are listed but do not count toward the amount spent.
func (s *orderService) ListForSession(ctx context.Context, session *store.Session) (*dto.OrderHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.OrderRepository().FindAll(ctx, contract.OrderFilter{SessionId: session.ID})
	if err != nil {
		return nil, err
	}

	stats := dto.OrderStatsResponse{TotalOrders: len(list), TotalSpent: decimal.Zero}
	for _, o := range list {
		stats.TotalItems += o.ItemCount()
		if o.Status != entity.OrderStatusCancelled {
			stats.TotalSpent = stats.TotalSpent.Add(o.Total)
		}
	}

	return &dto.OrderHistoryResponse{Stats: stats, Orders: mapper.OrdersToResponse(list)}, nil
}

func (s *orderService) Show(ctx context.Context, session *store.Session, id string) (*dto.OrderResponse, error) {
	order, err := s.processor.Find(ctx, s.uowFactory.NewUnitOfWork(ctx), id, session.ID)
	if err != nil {
		return nil, err
	}
	res := mapper.OrderToResponse(order)
	return &res, nil
}

// Reorder adds the order's quantities to the cart. Products that left the
// catalog are reported as skipped.
func (s *orderService) Reorder(ctx context.Context, session *store.Session, id string) (*dto.ReorderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := s.processor.Find(ctx, uow, id, session.ID)
	if err != nil {
		return nil, err
	}

	res := &dto.ReorderResponse{OrderId: order.Id, Added: []string{}, Skipped: []string{}}
	products := uow.ProductRepository()
	for _, item := range order.Items {
		product, err := products.FindById(ctx, item.ProductId)
		if err != nil {
			return nil, err
		}
		if product == nil {
			res.Skipped = append(res.Skipped, item.ProductId)
			continue
		}
		if err := session.Cart.Add(item.ProductId, item.Quantity); err != nil {
			return nil, err
		}
		res.Added = append(res.Added, item.ProductId)
	}
	res.CartSize = session.Cart.Count()

	s.logger.Info("ORDERS", "Order re-added to cart", map[string]interface{}{"order_id": id, "added": len(res.Added), "skipped": len(res.Skipped)})
	return res, nil
}

func (s *orderService) Cancel(ctx context.Context, session *store.Session, id string) (*dto.OrderResponse, error) {
	order, err := s.processor.Cancel(ctx, s.uowFactory.NewUnitOfWork(ctx), id, session.ID)
	if err != nil {
		return nil, err
	}
	metrics.RecordCancellation()

	res := mapper.OrderToResponse(order)
	return &res, nil
}
