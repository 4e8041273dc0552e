package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/entity"
)

// CashSessionRepository defines the interface for shift record operations.
type CashSessionRepository interface {
	Create(ctx context.Context, session *entity.CashSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashSession, error)
	// GetOpen returns the most recently opened session with status='open', or
	// (nil, nil) when none exists. Current register state is always re-derived
	// through this query, never cached in memory.
	GetOpen(ctx context.Context) (*entity.CashSession, error)
	// Close finalizes an open session in a single guarded update: it writes
	// closed_at, status='closed' and the frozen totals, and fails if the row
	// is no longer open (lost race with another terminal).
	Close(ctx context.Context, id uuid.UUID, closedAt time.Time, totalSales int64, totalOrders int) error
	// ListByDay returns every session of an operational day ordered by
	// opened_at ascending, the order they appear in a day report.
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.CashSession, error)
}
