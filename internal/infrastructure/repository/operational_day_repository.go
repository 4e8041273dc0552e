package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	domainRepo "github.com/jamaney/mmtacos-api/internal/domain/repository"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
	"gorm.io/gorm"
)

type operationalDayRepository struct {
	db *gorm.DB
}

// NewOperationalDayRepository creates a new operational day repository
func NewOperationalDayRepository(db *gorm.DB) domainRepo.OperationalDayRepository {
	return &operationalDayRepository{db: db}
}

// CreateWithSession opens a day and its first shift in one transaction.
func (r *operationalDayRepository) CreateWithSession(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(day).Error; err != nil {
			return err
		}
		session.OperationalDayID = day.ID
		return tx.Create(session).Error
	})
}

func (r *operationalDayRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error) {
	var day entity.OperationalDay
	err := r.db.WithContext(ctx).First(&day, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &day, err
}

func (r *operationalDayRepository) GetOpen(ctx context.Context) (*entity.OperationalDay, error) {
	var day entity.OperationalDay
	err := r.db.WithContext(ctx).
		Where("status = ?", "open").
		Order("opened_at DESC").
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &day, err
}

func (r *operationalDayRepository) Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&entity.OperationalDay{}).
		Where("id = ? AND status = ?", id, "open").
		Updates(map[string]interface{}{
			"status":       "closed",
			"closed_at":    closedAt,
			"total_sales":  totalSales,
			"total_orders": totalOrders,
			"closed_by":    closedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *operationalDayRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error) {
	var days []entity.OperationalDay
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.OperationalDay{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("opened_at ASC")
		}).
		Order("opened_at DESC").
		Find(&days).Error

	return days, total, err
}
