package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/pkg/pagination"
)

// OrderFilterParams holds the filters for listing register orders.
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches order number or ticket code
	StartDate  *time.Time
	EndDate    *time.Time
	SessionID  *uuid.UUID
}

// OrderRepository defines the interface for order ledger operations. The
// ledger is append-only: no Update or Delete, since closed shift and day
// totals are frozen snapshots of what was in the ledger at close time.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByTicketCode(ctx context.Context, ticketCode string) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListInRange returns every order with created_at in [from, to), ordered by
	// created_at then daily_sequence ascending so orders sharing a timestamp
	// keep their insertion order. Reconciliation aggregates are computed from
	// this query.
	ListInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	// ListBySession returns the orders foreign-keyed to a session, used as the
	// audit cross-check against the time-range attribution.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error)
}

// SequenceRepository is the atomic daily-sequence allocator. NextDailySequence
// must be safe under concurrent callers: two terminals recording sales at the
// same instant must never receive the same number.
type SequenceRepository interface {
	NextDailySequence(ctx context.Context, day time.Time) (int, error)
}
