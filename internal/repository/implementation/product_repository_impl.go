package implementation

import (
	"context"
	"errors"
	"fmt"

	"techmart-be/internal/entity"
	"techmart-be/internal/mapper"
	"techmart-be/internal/model"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/scope"
	"techmart-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	existing, err := r.FindById(ctx, product.Id)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateProduct, product.Id)
	}

	if product.Version == 0 {
		product.Version = 1
	}
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	expected := product.Version
	m := r.mapper.ToModel(product)
	m.Version = expected + 1

	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND version = ?", product.Id, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		current, err := r.FindById(ctx, product.Id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", entity.ErrProductNotFound, product.Id)
		}
		return fmt.Errorf("%w: %s at version %d", entity.ErrVersionConflict, product.Id, current.Version)
	}

	product.Version = m.Version
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	return nil
}

func (r *ProductRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Product, error) {
	var m model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var models []*model.Product
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByCatalog).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
