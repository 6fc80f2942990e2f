package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/mailer"
	"techmart-be/internal/pkg/metrics"
	"techmart-be/internal/repository/unitofwork"
	adminEvents "techmart-be/pkg/admin/events"
	"techmart-be/pkg/admin/mapper"
	"techmart-be/pkg/imageref"
	"techmart-be/pkg/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	View(ctx context.Context, session *store.Session) (*dto.CartResponse, error)
	Add(ctx context.Context, session *store.Session, req *dto.AddToCartRequest) (*dto.CartResponse, error)
	SetQuantity(ctx context.Context, session *store.Session, productId string, qty int) (*dto.CartResponse, error)
	Remove(ctx context.Context, session *store.Session, productId string) (*dto.CartResponse, error)
	Checkout(ctx context.Context, session *store.Session, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type cartService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    adminEvents.Publisher
	emailService mailer.IEmailService
	view         productView
	logger       logger.ILogger
}

func NewCartService(
	uowFactory unitofwork.RepositoryFactory,
	publisher adminEvents.Publisher,
	emailService mailer.IEmailService,
	resolver *imageref.Resolver,
	log logger.ILogger,
) ICartService {
	return &cartService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		emailService: emailService,
		view:         newProductView(resolver, log),
		logger:       log,
	}
}

func (s *cartService) View(ctx context.Context, session *store.Session) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byId := indexProducts(products)

	lines := make([]dto.CartLineResponse, 0)
	for _, entry := range session.Cart.Entries() {
		p, ok := byId[entry.ProductId]
		if !ok {
			lines = append(lines, dto.CartLineResponse{
				ProductId: entry.ProductId,
				Name:      entry.ProductId,
				Image:     imageref.View{Kind: imageref.KindNone},
				UnitPrice: decimal.Zero,
				Quantity:  entry.Quantity,
				Subtotal:  decimal.Zero,
			})
			continue
		}
		lines = append(lines, dto.CartLineResponse{
			ProductId: p.Id,
			Name:      p.Name,
			Image:     s.view.image(ctx, p.Image),
			UnitPrice: p.Price,
			Quantity:  entry.Quantity,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))),
			Stock:     p.Stock,
			Available: true,
		})
	}

	return &dto.CartResponse{
		Lines:     lines,
		ItemCount: session.Cart.Count(),
		Total:     session.Cart.Total(priceLookup(byId)),
	}, nil
}

func (s *cartService) requireProduct(ctx context.Context, productId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindById(ctx, productId)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, productId)
	}
	return nil
}

// Add increments the cart entry. Quantities are not capped by stock here;
// stock is enforced at checkout.
func (s *cartService) Add(ctx context.Context, session *store.Session, req *dto.AddToCartRequest) (*dto.CartResponse, error) {
	if req.Quantity < 1 {
		return nil, entity.ErrInvalidQuantity
	}
	if err := s.requireProduct(ctx, req.ProductId); err != nil {
		return nil, err
	}
	if err := session.Cart.Add(req.ProductId, req.Quantity); err != nil {
		return nil, err
	}
	metrics.RecordCartAddition(req.Quantity)

	return s.View(ctx, session)
}

func (s *cartService) SetQuantity(ctx context.Context, session *store.Session, productId string, qty int) (*dto.CartResponse, error) {
	if qty > 0 {
		if err := s.requireProduct(ctx, productId); err != nil {
			return nil, err
		}
	}
	session.Cart.Set(productId, qty)
	return s.View(ctx, session)
}

func (s *cartService) Remove(ctx context.Context, session *store.Session, productId string) (*dto.CartResponse, error) {
	session.Cart.Remove(productId)
	return s.View(ctx, session)
}

// Checkout turns the cart into a Pending order. Stock is checked and
// decremented in one unit of work; on any failure the catalog and the cart
// are left as they were. Entries for products no longer in the catalog are
// skipped.
func (s *cartService) Checkout(ctx context.Context, session *store.Session, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if session.Cart.IsEmpty() {
		metrics.RecordCheckout("empty_cart", 0)
		return nil, entity.ErrCartEmpty
	}

	order, err := s.placeOrder(ctx, session, req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCartEmpty):
			metrics.RecordCheckout("empty_cart", 0)
		case errors.Is(err, entity.ErrInsufficientStock):
			metrics.RecordCheckout("insufficient_stock", 0)
		default:
			metrics.RecordCheckout("error", 0)
		}
		return nil, err
	}

	session.Cart.Clear()
	session.Flash = store.Flash{
		PurchaseSuccessful: true,
		LastOrderId:        order.Id,
		Message:            fmt.Sprintf("Order #%s placed successfully!", order.Id),
	}

	total, _ := order.Total.Float64()
	metrics.RecordCheckout("success", total)
	s.logger.Info("CHECKOUT", "Order placed", map[string]interface{}{
		"order_id":   order.Id,
		"session_id": session.ID,
		"total":      order.Total.StringFixed(2),
		"items":      order.ItemCount(),
	})
	s.publisher.PublishOrderPlaced(ctx, order)

	if order.Email != "" {
		if err := s.emailService.SendOrderConfirmation(order.Email, order); err != nil {
			s.logger.Warn("CHECKOUT", "Order confirmation email failed", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
		}
	}

	return &dto.CheckoutResponse{
		OrderId:           order.Id,
		Total:             order.Total,
		Items:             mapper.OrderItemsToResponse(order.Items),
		Status:            string(order.Status),
		EstimatedDelivery: order.EstimatedDelivery.Format("2006-01-02"),
	}, nil
}

func (s *cartService) placeOrder(ctx context.Context, session *store.Session, req *dto.CheckoutRequest) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	products := uow.ProductRepository()
	items := make([]entity.OrderItem, 0, len(session.Cart.Items))
	total := decimal.Zero

	for _, entry := range session.Cart.Entries() {
		product, err := products.FindById(ctx, entry.ProductId)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		if product.Stock < entry.Quantity {
			return nil, fmt.Errorf("%w: %s has %d left, %d requested", entity.ErrInsufficientStock, product.Name, product.Stock, entry.Quantity)
		}

		product.Stock -= entry.Quantity
		if err := products.Update(ctx, product); err != nil {
			return nil, err
		}

		item := entity.OrderItem{
			ProductId: product.Id,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  entry.Quantity,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, entity.ErrCartEmpty
	}

	now := time.Now()
	order := &entity.Order{
		Id:                strings.ToUpper(uuid.NewString()[:8]),
		SessionId:         session.ID,
		Email:             strings.TrimSpace(req.Email),
		Items:             items,
		Total:             total,
		Status:            entity.OrderStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(entity.DeliveryWindow),
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}
