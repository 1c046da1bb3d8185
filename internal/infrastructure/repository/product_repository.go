package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	domainRepo "github.com/uav-siberia/leads-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) List(ctx context.Context, category enum.ProductCategory) ([]entity.Product, error) {
	var products []entity.Product

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) GetByNames(ctx context.Context, names []string) ([]entity.Product, error) {
	if len(names) == 0 {
		return []entity.Product{}, nil
	}

	var found []entity.Product
	err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&found).Error
	if err != nil {
		return nil, err
	}

	byName := make(map[string]entity.Product, len(found))
	for _, p := range found {
		byName[p.Name] = p
	}

	// Preserve the request's product order; unknown names are skipped.
	products := make([]entity.Product, 0, len(names))
	for _, name := range names {
		if p, ok := byName[name]; ok {
			products = append(products, p)
		}
	}

	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&total).Error
	return total, err
}
