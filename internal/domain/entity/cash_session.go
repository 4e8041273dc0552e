package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CashSession represents one cashier's continuous working period within an
// operational day (a "shift"). It is mutable only while open; closing freezes
// its totals forever. At most one session per day may be open at a time,
// enforced by a partial unique index on (operational_day_id) WHERE status='open'.
type CashSession struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SessionCode      string             `gorm:"size:30;uniqueIndex;not null" json:"session_code"`
	CashierName      string             `gorm:"size:100;not null" json:"cashier_name"`
	OperationalDayID uuid.UUID          `gorm:"type:uuid;not null;index" json:"operational_day_id"`
	OpenedAt         time.Time          `gorm:"not null" json:"opened_at"`
	ClosedAt         *time.Time         `json:"closed_at,omitempty"`
	Status           enum.SessionStatus `gorm:"size:10;not null;default:'open'" json:"status"`
	TotalSales       int64              `gorm:"default:0" json:"total_sales"`
	TotalOrders      int                `gorm:"default:0" json:"total_orders"`
	OpenedBy         *uuid.UUID         `gorm:"type:uuid" json:"opened_by,omitempty"`

	Day *OperationalDay `gorm:"foreignKey:OperationalDayID" json:"-"`
}

// IsOpen reports whether the session is still accepting sales.
func (s *CashSession) IsOpen() bool {
	return s.Status == enum.SessionStatusOpen
}

// BeforeCreate generates a UUID before creating a new session
func (s *CashSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashSession model
func (CashSession) TableName() string {
	return "cash_sessions"
}
