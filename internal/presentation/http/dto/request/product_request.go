package request

// ProductSizeRequest is one price variant in a product payload
type ProductSizeRequest struct {
	Name  string `json:"name" binding:"required,max=10"`
	Price int64  `json:"price" binding:"required,min=1"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string               `json:"name" binding:"required,min=2,max=255"`
	Price    int64                `json:"price" binding:"required,min=1"`
	Category string               `json:"category" binding:"required"`
	Sizes    []ProductSizeRequest `json:"sizes"`
	Image    *string              `json:"image"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     *string              `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *int64               `json:"price" binding:"omitempty,min=1"`
	Category *string              `json:"category"`
	Sizes    []ProductSizeRequest `json:"sizes"`
	Image    *string              `json:"image"`
	Active   *bool                `json:"active"`
}
