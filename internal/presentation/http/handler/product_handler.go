package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/request"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/response"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the active catalog
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Get returns a single product by slug
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Sizes:    toProductSizes(req.Sizes),
		Image:    req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update edits a catalog product
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Slug:     c.Param("slug"),
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Active:   req.Active,
	}
	if req.Sizes != nil {
		input.Sizes = toProductSizes(req.Sizes)
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

func toProductSizes(sizes []request.ProductSizeRequest) []entity.ProductSize {
	if sizes == nil {
		return nil
	}
	out := make([]entity.ProductSize, len(sizes))
	for i, s := range sizes {
		out[i] = entity.ProductSize{Name: s.Name, Price: s.Price}
	}
	return out
}
