package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/unitofwork"
	adminEvents "techmart-be/pkg/admin/events"
	"techmart-be/pkg/catalog"
	"techmart-be/pkg/imageref"
	"techmart-be/pkg/store"
)

type ICatalogService interface {
	List(ctx context.Context, session *store.Session, query *dto.CatalogQuery) (*dto.CatalogResponse, error)
	Show(ctx context.Context, session *store.Session, id string) (*dto.ProductDetailResponse, error)
	Categories(ctx context.Context) (*dto.CategoriesResponse, error)
	AddReview(ctx context.Context, session *store.Session, id string, req *dto.AddReviewRequest) (*dto.ProductDetailResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  adminEvents.Publisher
	view       productView
	logger     logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	publisher adminEvents.Publisher,
	resolver *imageref.Resolver,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		publisher:  publisher,
		view:       newProductView(resolver, log),
		logger:     log,
	}
}

// List applies the query on top of the session's current filters and stores
// the result as the new current filters.
func (s *catalogService) List(ctx context.Context, session *store.Session, query *dto.CatalogQuery) (*dto.CatalogResponse, error) {
	current := session.Filters
	category, search, sortKey := current.Category, current.Search, current.Sort
	if query != nil {
		if query.Category != nil {
			category = *query.Category
		}
		if query.Search != nil {
			search = *query.Search
		}
		if query.Sort != nil {
			sortKey = *query.Sort
		}
	}

	filters, err := normalizeFilters(category, search, sortKey)
	if err != nil {
		return nil, err
	}
	session.Filters = filters

	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	listed := catalog.Apply(products, filters)
	items := make([]dto.ProductSummaryResponse, 0, len(listed))
	for _, p := range listed {
		items = append(items, s.view.summary(ctx, p, session.Cart))
	}

	return &dto.CatalogResponse{
		Filters:    filtersToDto(filters),
		Categories: append([]string{store.CategoryAll}, catalog.Categories(products)...),
		Total:      len(items),
		Products:   items,
	}, nil
}

func (s *catalogService) Show(ctx context.Context, session *store.Session, id string) (*dto.ProductDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	return s.view.detail(ctx, product, session.Cart), nil
}

func (s *catalogService) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]string, len(entity.Categories))
	for i, c := range entity.Categories {
		all[i] = string(c)
	}
	return &dto.CategoriesResponse{Present: catalog.Categories(products), All: all}, nil
}

func (s *catalogService) AddReview(ctx context.Context, session *store.Session, id string, req *dto.AddReviewRequest) (*dto.ProductDetailResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, entity.ErrInvalidRating
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ProductRepository()
	product, err := repo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}

	product.AddReview(entity.Review{
		Rating:    req.Rating,
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: time.Now(),
	})
	if err := repo.Update(ctx, product); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("CATALOG", "Review added", map[string]interface{}{"product_id": id, "rating": req.Rating, "average": product.Rating})
	s.publisher.PublishReviewAdded(ctx, product, req.Rating)
	return s.view.detail(ctx, product, session.Cart), nil
}
