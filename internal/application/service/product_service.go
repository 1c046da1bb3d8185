package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/pkg/apperror"
)

// ProductService exposes the read-only equipment catalog.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the catalog, optionally filtered by category.
func (s *ProductService) ListProducts(ctx context.Context, category enum.ProductCategory) ([]entity.Product, error) {
	if category != "" && !category.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown category: " + category.String())
	}
	return s.productRepo.List(ctx, category)
}
