package service

import (
	"context"
	"strings"

	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/utils"
)

// ProductService handles the register catalog
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Price    int64
	Category string
	Sizes    []entity.ProductSize
	Image    *string
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "Name is required"}})
	}
	if input.Price <= 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "price", Message: "Price must be positive"}})
	}
	category := enum.ProductCategory(input.Category)
	if !category.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "category", Message: "Unknown category"}})
	}
	for _, size := range input.Sizes {
		if size.Name == "" || size.Price <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "sizes", Message: "Each size needs a name and a positive price"}})
		}
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	product := &entity.Product{
		Name:     strings.TrimSpace(input.Name),
		Slug:     slug,
		Price:    input.Price,
		Category: category,
		Sizes:    input.Sizes,
		Image:    input.Image,
		Active:   true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by slug
func (s *ProductService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the active catalog, optionally narrowed to a category.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	var filter *enum.ProductCategory
	if category != "" {
		c := enum.ProductCategory(category)
		if !c.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "category", Message: "Unknown category"}})
		}
		filter = &c
	}
	return s.productRepo.List(ctx, filter)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Slug     string
	Name     *string
	Price    *int64
	Category *string
	Sizes    []entity.ProductSize
	Image    *string
	Active   *bool
}

// UpdateProduct updates a catalog product. Past orders keep the name and price
// copied at sale time, so edits here never rewrite reconciliation history.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && *input.Name != product.Name {
		slug := utils.Slugify(*input.Name)
		existing, err := s.productRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("A product with this name already exists")
		}
		product.Name = strings.TrimSpace(*input.Name)
		product.Slug = slug
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "price", Message: "Price must be positive"}})
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		category := enum.ProductCategory(*input.Category)
		if !category.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "category", Message: "Unknown category"}})
		}
		product.Category = category
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a catalog product
func (s *ProductService) DeleteProduct(ctx context.Context, slug string) error {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, product.ID)
}
