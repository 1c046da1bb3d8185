package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
)

// ProductRepository defines the interface for catalog reads.
// The catalog is seeded at startup and never mutated through the API.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// List returns the catalog, optionally filtered by category.
	List(ctx context.Context, category enum.ProductCategory) ([]entity.Product, error)
	// GetByNames resolves product names to catalog entities, preserving
	// the input order. Unknown names are skipped, not errors.
	GetByNames(ctx context.Context, names []string) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
