package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// OperationalDayRepository defines the interface for operational day records.
type OperationalDayRepository interface {
	// CreateWithSession inserts a new day and its first session atomically, so
	// a crash between the two writes cannot leave a day without any session.
	CreateWithSession(ctx context.Context, day *entity.OperationalDay, session *entity.CashSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OperationalDay, error)
	// GetOpen returns the most recently opened day with status='open', or
	// (nil, nil) when none exists.
	GetOpen(ctx context.Context) (*entity.OperationalDay, error)
	// Close finalizes an open day in a single guarded update, mirroring
	// CashSessionRepository.Close.
	Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int, closedBy *uuid.UUID) error
	// List returns closed-and-open days newest first for the history surface.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.OperationalDay, int64, error)
}
