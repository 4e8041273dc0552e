package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
)

// ProductRepository defines the interface for the register catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns active products, optionally narrowed to one category,
	// ordered by category then name for a stable register grid.
	List(ctx context.Context, category *enum.ProductCategory) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
