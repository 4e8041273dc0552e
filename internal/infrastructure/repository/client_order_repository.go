package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	domainRepo "github.com/jamaney/mmtacos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type clientOrderRepository struct {
	db *gorm.DB
}

// NewClientOrderRepository creates a new client order repository
func NewClientOrderRepository(db *gorm.DB) domainRepo.ClientOrderRepository {
	return &clientOrderRepository{db: db}
}

func (r *clientOrderRepository) Create(ctx context.Context, order *entity.ClientOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *clientOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClientOrder, error) {
	var order entity.ClientOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *clientOrderRepository) List(ctx context.Context, params *domainRepo.ClientOrderFilterParams) ([]entity.ClientOrder, int64, error) {
	var orders []entity.ClientOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ClientOrder{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Phone != "" {
		query = query.Where("phone ILIKE ?", "%"+params.Phone+"%")
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

func (r *clientOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ClientOrderStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.ClientOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
