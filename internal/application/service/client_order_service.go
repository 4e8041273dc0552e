package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// ClientOrderService handles online storefront orders. These stay outside cash
// reconciliation: an online order only enters the register ledger when staff
// ring it up as a regular sale.
type ClientOrderService struct {
	clientOrderRepo repository.ClientOrderRepository
}

// NewClientOrderService creates a new client order service
func NewClientOrderService(clientOrderRepo repository.ClientOrderRepository) *ClientOrderService {
	return &ClientOrderService{clientOrderRepo: clientOrderRepo}
}

// ClientOrderLineInput represents one cart line from the storefront
type ClientOrderLineInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Note     string `json:"note"`
}

// CreateClientOrderInput represents the storefront checkout payload
type CreateClientOrderInput struct {
	Phone           string
	DeliveryType    string
	DeliveryAddress *string
	OrderType       string
	Lines           []ClientOrderLineInput
}

// CreateClientOrder records an online order from the public storefront
func (s *ClientOrderService) CreateClientOrder(ctx context.Context, input *CreateClientOrderInput) (*entity.ClientOrder, error) {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Phone) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone number is required"})
	}
	switch input.DeliveryType {
	case "livraison":
		if input.DeliveryAddress == nil || strings.TrimSpace(*input.DeliveryAddress) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery_address", Message: "Delivery address is required for livraison"})
		}
	case "emporter":
	default:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery_type", Message: "Delivery type must be livraison or emporter"})
	}
	if len(input.Lines) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "lines", Message: "Order must contain at least one article"})
	}
	for _, line := range input.Lines {
		if line.Name == "" || line.Quantity <= 0 || line.Price < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "lines", Message: "Each line needs a name, a positive quantity and a non-negative price"})
			break
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = "standard"
	}

	lines := make([]entity.ClientOrderLine, len(input.Lines))
	var total int64
	for i, line := range input.Lines {
		lines[i] = entity.ClientOrderLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Note:     line.Note,
		}
		total += line.Price * int64(line.Quantity)
	}

	order := &entity.ClientOrder{
		Phone:           strings.TrimSpace(input.Phone),
		DeliveryType:    input.DeliveryType,
		DeliveryAddress: input.DeliveryAddress,
		OrderType:       orderType,
		Lines:           lines,
		Status:          enum.ClientOrderNew,
		Total:           total,
	}

	if err := s.clientOrderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetClientOrder retrieves a storefront order by ID
func (s *ClientOrderService) GetClientOrder(ctx context.Context, id uuid.UUID) (*entity.ClientOrder, error) {
	order, err := s.clientOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Client order")
	}
	return order, nil
}

// ListClientOrders lists storefront orders, newest first
func (s *ClientOrderService) ListClientOrders(ctx context.Context, params *repository.ClientOrderFilterParams) (*pagination.PaginatedResult[entity.ClientOrder], error) {
	orders, total, err := s.clientOrderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateClientOrderStatus advances a storefront order through its lifecycle
func (s *ClientOrderService) UpdateClientOrderStatus(ctx context.Context, id uuid.UUID, status enum.ClientOrderStatus) (*entity.ClientOrder, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "status", Message: "Unknown status"}})
	}

	order, err := s.clientOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Client order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError("Cannot move order from " + order.Status.String() + " to " + status.String())
	}

	if err := s.clientOrderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
