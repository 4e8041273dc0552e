package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// ClientOrderFilterParams holds the filters for listing storefront orders.
type ClientOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.ClientOrderStatus
	Phone      string
}

// ClientOrderRepository defines the interface for online storefront orders.
type ClientOrderRepository interface {
	Create(ctx context.Context, order *entity.ClientOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClientOrder, error)
	List(ctx context.Context, params *ClientOrderFilterParams) ([]entity.ClientOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ClientOrderStatus) error
}
