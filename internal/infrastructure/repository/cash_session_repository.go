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

type cashSessionRepository struct {
	db *gorm.DB
}

// NewCashSessionRepository creates a new cash session repository
func NewCashSessionRepository(db *gorm.DB) domainRepo.CashSessionRepository {
	return &cashSessionRepository{db: db}
}

func (r *cashSessionRepository) Create(ctx context.Context, session *entity.CashSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *cashSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error) {
	var session entity.CashSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *cashSessionRepository) GetOpen(ctx context.Context) (*entity.CashSession, error) {
	var session entity.CashSession
	err := r.db.WithContext(ctx).
		Where("status = ?", "open").
		Order("opened_at DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

// Close writes the frozen totals in one guarded update. The status predicate
// makes the close race-safe: the terminal that loses the race sees zero rows
// affected.
func (r *cashSessionRepository) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error {
	result := r.db.WithContext(ctx).Model(&entity.CashSession{}).
		Where("id = ? AND status = ?", id, "open").
		Updates(map[string]interface{}{
			"status":       "closed",
			"closed_at":    closedAt,
			"total_sales":  totalSales,
			"total_orders": totalOrders,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cashSessionRepository) ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error) {
	var sessions []entity.CashSession
	err := r.db.WithContext(ctx).
		Where("operational_day_id = ?", dayID).
		Order("opened_at ASC").
		Find(&sessions).Error
	return sessions, err
}
