package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// OperationalDay is the top-level daily register lifecycle container. It owns
// one or more cash sessions and is opened and closed exactly once. Its frozen
// totals are recomputed from the order ledger at close, independently of the
// sessions' own frozen totals, so the two can be cross-checked in an audit.
// At most one day may be open system-wide, enforced by a partial unique index
// on (status) WHERE status='open'.
type OperationalDay struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DayCode     string         `gorm:"size:30;uniqueIndex;not null" json:"day_code"`
	OpenedAt    time.Time      `gorm:"not null" json:"opened_at"`
	ClosedAt    *time.Time     `json:"closed_at,omitempty"`
	Status      enum.DayStatus `gorm:"size:10;not null;default:'open'" json:"status"`
	TotalSales  int64          `gorm:"default:0" json:"total_sales"`
	TotalOrders int            `gorm:"default:0" json:"total_orders"`
	OpenedBy    *uuid.UUID     `gorm:"type:uuid" json:"opened_by,omitempty"`
	ClosedBy    *uuid.UUID     `gorm:"type:uuid" json:"closed_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`

	Sessions []CashSession `gorm:"foreignKey:OperationalDayID" json:"sessions,omitempty"`
}

// IsOpen reports whether the day is still in progress.
func (d *OperationalDay) IsOpen() bool {
	return d.Status == enum.DayStatusOpen
}

// BeforeCreate generates a UUID before creating a new operational day
func (d *OperationalDay) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OperationalDay model
func (OperationalDay) TableName() string {
	return "operational_days"
}
