package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"techmart-be/internal/dto"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/repository/unitofwork"
	adminEvents "techmart-be/pkg/admin/events"
)

var (
	productIdPattern = regexp.MustCompile(`^P(\d+)$`)
	validIdPattern   = regexp.MustCompile(`^[A-Za-z0-9]{1,16}$`)
)

// NextProductId returns P%03d one past the highest numeric id in products.
func NextProductId(products []*entity.Product) string {
	highest := 0
	for _, p := range products {
		match := productIdPattern.FindStringSubmatch(p.Id)
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("P%03d", highest+1)
}

// ParseSpecs splits the admin form's one-spec-per-line text.
func ParseSpecs(text string) []string {
	specs := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			specs = append(specs, line)
		}
	}
	return specs
}

// Manager applies admin edits to the catalog.
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

func validate(req dto.UpsertProductRequest) error {
	if !req.Price.IsPositive() {
		return entity.ErrInvalidPrice
	}
	if !entity.Category(req.Category).Valid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidCategory, req.Category)
	}
	if req.Stock < 0 {
		return fmt.Errorf("%w: %d", entity.ErrInvalidStock, req.Stock)
	}
	if id := strings.TrimSpace(req.Id); id != "" && !validIdPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidProductId, id)
	}
	return nil
}

// Upsert replaces the product with req.Id when it exists and appends a new
// product otherwise. An empty id gets the next free P%03d id.
func (m *Manager) Upsert(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UpsertProductRequest) (*entity.Product, bool, error) {
	if err := validate(req); err != nil {
		return nil, false, err
	}

	specs := req.Specs
	if len(specs) == 0 && req.SpecsText != "" {
		specs = ParseSpecs(req.SpecsText)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}
	defer uow.Rollback()

	repo := uow.ProductRepository()

	id := strings.TrimSpace(req.Id)
	if id == "" {
		all, err := repo.FindAll(ctx)
		if err != nil {
			return nil, false, err
		}
		id = NextProductId(all)
	}

	existing, err := repo.FindById(ctx, id)
	if err != nil {
		return nil, false, err
	}

	var product *entity.Product
	created := existing == nil
	if created {
		image := strings.TrimSpace(req.Image)
		if image == "" {
			image = entity.DefaultProductImage
		}
		product = &entity.Product{
			Id:          id,
			Name:        req.Name,
			Category:    entity.Category(req.Category),
			Price:       req.Price,
			Stock:       req.Stock,
			Image:       image,
			Description: req.Description,
			Specs:       specs,
			Rating:      entity.DefaultProductRating,
		}
		if err := repo.Create(ctx, product); err != nil {
			return nil, false, err
		}
	} else {
		if req.ExpectedVersion != nil && *req.ExpectedVersion != existing.Version {
			return nil, false, fmt.Errorf("%w: %s is at version %d", entity.ErrVersionConflict, id, existing.Version)
		}
		product = existing
		product.Name = req.Name
		product.Category = entity.Category(req.Category)
		product.Price = req.Price
		product.Stock = req.Stock
		product.Description = req.Description
		product.Specs = specs
		if image := strings.TrimSpace(req.Image); image != "" {
			product.Image = image
		}
		if err := repo.Update(ctx, product); err != nil {
			return nil, false, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, false, err
	}

	m.logger.Info("ADMIN", "Product saved", map[string]interface{}{"product_id": id, "created": created, "version": product.Version})
	m.publisher.PublishProductUpserted(ctx, product, created)
	return product, created, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id string) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	m.logger.Info("ADMIN", "Product deleted", map[string]interface{}{"product_id": id})
	m.publisher.PublishProductDeleted(ctx, id)
	return nil
}

func (m *Manager) UpdateStock(ctx context.Context, uow unitofwork.UnitOfWork, id string, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidStock, stock)
	}

	var previous int
	product, err := m.mutate(ctx, uow, id, func(p *entity.Product) {
		previous = p.Stock
		p.Stock = stock
	})
	if err != nil {
		return nil, err
	}

	m.publisher.PublishStockUpdated(ctx, id, previous, stock)
	return product, nil
}

// SetImage points the product at a new image reference. It returns the
// previous reference so callers can invalidate caches.
func (m *Manager) SetImage(ctx context.Context, uow unitofwork.UnitOfWork, id, image string) (*entity.Product, string, error) {
	var previous string
	product, err := m.mutate(ctx, uow, id, func(p *entity.Product) {
		previous = p.Image
		p.Image = image
	})
	if err != nil {
		return nil, "", err
	}

	m.publisher.PublishImageUpdated(ctx, id, image)
	return product, previous, nil
}

func (m *Manager) mutate(ctx context.Context, uow unitofwork.UnitOfWork, id string, apply func(p *entity.Product)) (*entity.Product, error) {
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

	apply(product)
	if err := repo.Update(ctx, product); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return product, nil
}
