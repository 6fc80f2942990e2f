package service

import (
	"context"
	"fmt"
	"strings"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/mailer"
	"techmart-be/internal/pkg/metrics"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/unitofwork"
	adminCatalog "techmart-be/pkg/admin/catalog"
	"techmart-be/pkg/admin/dashboard"
	"techmart-be/pkg/admin/mapper"
	"techmart-be/pkg/admin/orders"
	"techmart-be/pkg/imageref"
	"techmart-be/pkg/imagestore"
	"techmart-be/pkg/store"
)

type IAdminService interface {
	// Dashboard
	GetDashboardStats(ctx context.Context) (*dto.AdminDashboardStats, error)

	// Products
	ListProducts(ctx context.Context) ([]*dto.ProductDetailResponse, error)
	UpsertProduct(ctx context.Context, req *dto.UpsertProductRequest) (*dto.UpsertProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, req *dto.UpdateStockRequest) (*dto.ProductDetailResponse, error)
	UploadImage(ctx context.Context, id string, data []byte) (*dto.ProductDetailResponse, error)
	SetImageReference(ctx context.Context, id string, req *dto.SetImageRequest) (*dto.ProductDetailResponse, error)

	// Orders
	ListOrders(ctx context.Context, req *dto.AdminOrderListRequest) ([]dto.AdminOrderResponse, error)
	UpdateOrderStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.AdminOrderResponse, error)
	CancelOrder(ctx context.Context, id string) (*dto.AdminOrderResponse, error)
	NotifyOrder(ctx context.Context, id string, req *dto.NotifyOrderRequest) (*dto.NotifyOrderResponse, error)

	// System logs
	GetSystemLogs(ctx context.Context, req *dto.LogListRequest) ([]dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory   unitofwork.RepositoryFactory
	manager      *adminCatalog.Manager
	processor    *orders.Processor
	aggregator   *dashboard.Aggregator
	sessions     contract.SessionRepository
	images       imagestore.Store
	resolver     *imageref.Resolver
	uploadDir    string
	emailService mailer.IEmailService
	view         productView
	logger       logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	manager *adminCatalog.Manager,
	processor *orders.Processor,
	aggregator *dashboard.Aggregator,
	sessions contract.SessionRepository,
	images imagestore.Store,
	resolver *imageref.Resolver,
	uploadDir string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:   uowFactory,
		manager:      manager,
		processor:    processor,
		aggregator:   aggregator,
		sessions:     sessions,
		images:       images,
		resolver:     resolver,
		uploadDir:    uploadDir,
		emailService: emailService,
		view:         newProductView(resolver, log),
		logger:       log,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.AdminDashboardStats, error) {
	stats, err := s.aggregator.GetStats(ctx, s.uowFactory.NewUnitOfWork(ctx))
	if err != nil {
		return nil, err
	}

	active, err := s.sessions.Count(ctx)
	if err != nil {
		s.logger.Warn("ADMIN", "Failed to count active sessions", map[string]interface{}{"error": err.Error()})
	}
	stats.ActiveSessions = active
	return stats, nil
}

func (s *adminService) ListProducts(ctx context.Context) ([]*dto.ProductDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProductDetailResponse, 0, len(products))
	for _, p := range products {
		res = append(res, s.view.detail(ctx, p, store.Cart{}))
	}
	return res, nil
}

func (s *adminService) UpsertProduct(ctx context.Context, req *dto.UpsertProductRequest) (*dto.UpsertProductResponse, error) {
	product, created, err := s.manager.Upsert(ctx, s.uowFactory.NewUnitOfWork(ctx), *req)
	if err != nil {
		return nil, err
	}
	return &dto.UpsertProductResponse{
		Product: *s.view.detail(ctx, product, store.Cart{}),
		Created: created,
	}, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	return s.manager.Delete(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
}

func (s *adminService) UpdateStock(ctx context.Context, id string, req *dto.UpdateStockRequest) (*dto.ProductDetailResponse, error) {
	product, err := s.manager.UpdateStock(ctx, s.uowFactory.NewUnitOfWork(ctx), id, req.Stock)
	if err != nil {
		return nil, err
	}
	return s.view.detail(ctx, product, store.Cart{}), nil
}

// UploadImage stores data as <uploadDir>/<id>.<ext> and points the product at
// it. An earlier upload with a different extension is removed.
func (s *adminService) UploadImage(ctx context.Context, id string, data []byte) (*dto.ProductDetailResponse, error) {
	ext, err := imagestore.DetectImage(data)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ProductRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}

	key := imagestore.UploadKey(s.uploadDir, id, ext)
	if err := s.images.Save(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	s.resolver.Invalidate(key)

	product, previous, err := s.manager.SetImage(ctx, s.uowFactory.NewUnitOfWork(ctx), id, key)
	if err != nil {
		return nil, err
	}

	if previous != key && s.isUpload(previous) {
		if err := s.images.Delete(ctx, previous); err != nil {
			s.logger.Warn("ADMIN", "Failed to remove previous upload", map[string]interface{}{"key": previous, "error": err.Error()})
		}
		s.resolver.Invalidate(previous)
	}

	s.logger.Info("ADMIN", "Product image uploaded", map[string]interface{}{"product_id": id, "key": key, "bytes": len(data)})
	return s.view.detail(ctx, product, store.Cart{}), nil
}

func (s *adminService) isUpload(ref string) bool {
	dir := strings.Trim(s.uploadDir, "/") + "/"
	return strings.HasPrefix(strings.TrimPrefix(ref, "/"), dir)
}

// SetImageReference sets a symbol or an external URL. With neither given the
// product falls back to the default symbol.
func (s *adminService) SetImageReference(ctx context.Context, id string, req *dto.SetImageRequest) (*dto.ProductDetailResponse, error) {
	ref := strings.TrimSpace(req.Symbol)
	if ref == "" {
		ref = strings.TrimSpace(req.URL)
	}
	if ref == "" {
		ref = entity.DefaultProductImage
	}

	product, previous, err := s.manager.SetImage(ctx, s.uowFactory.NewUnitOfWork(ctx), id, ref)
	if err != nil {
		return nil, err
	}
	s.resolver.Invalidate(previous)

	return s.view.detail(ctx, product, store.Cart{}), nil
}

func (s *adminService) ListOrders(ctx context.Context, req *dto.AdminOrderListRequest) ([]dto.AdminOrderResponse, error) {
	list, err := s.processor.GetAll(ctx, s.uowFactory.NewUnitOfWork(ctx), req.Status, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToAdminResponse(list), nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.AdminOrderResponse, error) {
	status := entity.OrderStatus(req.Status)
	order, err := s.processor.UpdateStatus(ctx, s.uowFactory.NewUnitOfWork(ctx), id, status)
	if err != nil {
		return nil, err
	}
	if status == entity.OrderStatusCancelled {
		metrics.RecordCancellation()
	}

	res := mapper.OrderToAdminResponse(order)
	return &res, nil
}

func (s *adminService) CancelOrder(ctx context.Context, id string) (*dto.AdminOrderResponse, error) {
	order, err := s.processor.Cancel(ctx, s.uowFactory.NewUnitOfWork(ctx), id, "")
	if err != nil {
		return nil, err
	}
	metrics.RecordCancellation()

	res := mapper.OrderToAdminResponse(order)
	return &res, nil
}

// NotifyOrder emails the order's current status to req.Email, or to the
// address given at checkout.
func (s *adminService) NotifyOrder(ctx context.Context, id string, req *dto.NotifyOrderRequest) (*dto.NotifyOrderResponse, error) {
	order, err := s.processor.Find(ctx, s.uowFactory.NewUnitOfWork(ctx), id, "")
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = order.Email
	}
	if email == "" {
		return nil, fmt.Errorf("%w: %s", entity.ErrNoRecipient, id)
	}

	res := &dto.NotifyOrderResponse{OrderId: order.Id, Email: email}
	if !s.emailService.Enabled() {
		return res, nil
	}
	if err := s.emailService.SendOrderStatusUpdate(email, order); err != nil {
		return nil, fmt.Errorf("failed to send order update: %w", err)
	}
	res.Sent = true
	return res, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, req *dto.LogListRequest) ([]dto.LogListResponse, error) {
	page, limit := req.Page, req.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	entries, err := s.logger.GetLogs(strings.ToUpper(req.Level), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]dto.LogListResponse, len(entries))
	for i, e := range entries {
		res[i] = mapper.LogToListResponse(e)
	}
	return res, nil
}

func (s *adminService) GetLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, err
	}
	return mapper.LogToDetailResponse(entry), nil
}
