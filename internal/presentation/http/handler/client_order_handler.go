package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/request"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/dto/response"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// ClientOrderHandler handles online storefront order requests
type ClientOrderHandler struct {
	clientOrderService *service.ClientOrderService
}

// NewClientOrderHandler creates a new client order handler
func NewClientOrderHandler(clientOrderService *service.ClientOrderService) *ClientOrderHandler {
	return &ClientOrderHandler{clientOrderService: clientOrderService}
}

// Create records an order placed from the public storefront
func (h *ClientOrderHandler) Create(c *gin.Context) {
	var req request.CreateClientOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.ClientOrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = service.ClientOrderLineInput{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
			Note:     l.Note,
		}
	}

	order, err := h.clientOrderService.CreateClientOrder(c.Request.Context(), &service.CreateClientOrderInput{
		Phone:           req.Phone,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		OrderType:       req.OrderType,
		Lines:           lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order received successfully", order)
}

// List returns storefront orders for the back office
func (h *ClientOrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ClientOrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Phone:      c.Query("phone"),
	}
	if s := c.Query("status"); s != "" {
		status := enum.ClientOrderStatus(s)
		params.Status = &status
	}

	result, err := h.clientOrderService.ListClientOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Client orders retrieved successfully", result)
}

// Get returns a single storefront order
func (h *ClientOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.clientOrderService.GetClientOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client order retrieved successfully", order)
}

// UpdateStatus advances a storefront order through its lifecycle
func (h *ClientOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateClientOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.clientOrderService.UpdateClientOrderStatus(c.Request.Context(), id, enum.ClientOrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}
