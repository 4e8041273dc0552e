package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	domainRepo "github.com/jamaney/mmtacos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByTicketCode(ctx context.Context, ticketCode string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "ticket_code = ?", ticketCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("order_number ILIKE ? OR ticket_code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.SessionID != nil {
		query = query.Where("session_id = ?", *params.SessionID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// ListInRange is the reconciliation query: [from, to) on created_at, ordered
// so orders sharing a timestamp keep their insertion order.
func (r *orderRepository) ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC, daily_sequence ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, daily_sequence ASC").
		Find(&orders).Error
	return orders, err
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new daily sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// NextDailySequence allocates the next per-day order number with a single
// atomic upsert, safe under concurrent terminals.
func (r *sequenceRepository) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	seqDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var next int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO daily_sequences (seq_date, last_value)
		VALUES (?, 1)
		ON CONFLICT (seq_date)
		DO UPDATE SET last_value = daily_sequences.last_value + 1
		RETURNING last_value`, seqDate).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
