package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/apperror"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// RegisterService records walk-in sales into the order ledger. It enforces the
// sale gate itself: a sale is refused unless an open day with an open shift
// exists, regardless of what the front-end believed when it submitted.
type RegisterService struct {
	orderRepo      repository.OrderRepository
	seqRepo        repository.SequenceRepository
	reconciliation *ReconciliationService
	reports        *ReportService
	now            func() time.Time
}

// NewRegisterService creates a new register service
func NewRegisterService(
	orderRepo repository.OrderRepository,
	seqRepo repository.SequenceRepository,
	reconciliation *ReconciliationService,
	reports *ReportService,
) *RegisterService {
	return &RegisterService{
		orderRepo:      orderRepo,
		seqRepo:        seqRepo,
		reconciliation: reconciliation,
		reports:        reports,
		now:            time.Now,
	}
}

// SaleItemInput is one line of a sale as submitted by the register.
type SaleItemInput struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

// RecordSaleInput is the checkout payload.
type RecordSaleInput struct {
	Items         []SaleItemInput
	PaymentMethod enum.PaymentMethod
	AmountPaid    int64
	CreatedBy     *uuid.UUID
}

// RecordSale validates and persists a completed sale. The order is attributed
// to the currently open session both by foreign key and, implicitly, by its
// created_at falling inside the session's time range.
func (s *RegisterService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Order, error) {
	if err := validateSale(input); err != nil {
		return nil, err
	}

	state, err := s.reconciliation.CurrentState(ctx)
	if err != nil {
		return nil, err
	}
	if !state.State.CanSell() {
		return nil, apperror.NewStateConflictError("Register is closed, open a day and a shift before recording sales", state.State.String())
	}

	items := make([]entity.OrderItem, len(input.Items))
	var subtotal int64
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			Name:      strings.TrimSpace(item.Name),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		subtotal += items[i].LineTotal()
	}
	// Tax is structurally carried but fixed at zero: total == subtotal.
	total := subtotal
	if input.AmountPaid < total {
		return nil, apperror.NewBadRequestError("Amount paid is less than the order total")
	}

	createdAt := s.now()
	seq, err := s.seqRepo.NextDailySequence(ctx, createdAt)
	if err != nil {
		return nil, err
	}

	sessionID := state.Session.ID
	order := &entity.Order{
		ID:            uuid.New(),
		OrderNumber:   fmt.Sprintf("%03d", seq),
		DailySequence: seq,
		TicketCode:    generateTicketCode(),
		SessionID:     &sessionID,
		Items:         items,
		Subtotal:      subtotal,
		TaxRate:       0,
		TaxAmount:     0,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		AmountPaid:    input.AmountPaid,
		ChangeAmount:  input.AmountPaid - total,
		CreatedBy:     input.CreatedBy,
		CreatedAt:     createdAt,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.reports.PrintReceipt(order); err != nil {
		log.Printf("Receipt print failed for order %s: %v", order.TicketCode, err)
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *RegisterService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByTicketCode retrieves an order by its opaque ticket code (reprint).
func (s *RegisterService) GetOrderByTicketCode(ctx context.Context, ticketCode string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByTicketCode(ctx, ticketCode)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists the order history with filtering
func (s *RegisterService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ReprintReceipt re-renders and prints the receipt of a past order.
func (s *RegisterService) ReprintReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	receipt := s.reports.BuildReceipt(order)
	if err := s.reports.PrintReceipt(order); err != nil {
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

func validateSale(input *RecordSaleInput) error {
	if len(input.Items) == 0 {
		return apperror.NewBadRequestError("Order must contain at least one item")
	}
	var fieldErrors []apperror.FieldError
	for i, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].name", i), Message: "name is required",
			})
		}
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].quantity", i), Message: "quantity must be at least 1",
			})
		}
		if item.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: fmt.Sprintf("items[%d].unit_price", i), Message: "unit price cannot be negative",
			})
		}
	}
	if !input.PaymentMethod.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "payment_method", Message: "unknown payment method",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// generateTicketCode builds the opaque lookup code stored alongside the
// customer-facing 3-digit order number.
func generateTicketCode() string {
	return "TK-" + strings.ToUpper(uuid.New().String()[:8])
}
