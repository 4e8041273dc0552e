package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// OrderItem is a single line on a register order. Orders store their items
// inline as JSONB rather than in a child table: an order is immutable once
// persisted, so there is nothing to join or update row-by-row.
type OrderItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // whole CFA francs
}

// LineTotal returns quantity x unit price for this item.
func (i OrderItem) LineTotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// Order represents one completed point-of-sale transaction. Orders are
// append-only: once created they are never updated or deleted, because shift
// and day reconciliation totals are derived from them by time range.
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string             `gorm:"size:10;not null;index" json:"order_number"`
	DailySequence int                `gorm:"not null" json:"daily_sequence"`
	TicketCode    string             `gorm:"size:20;uniqueIndex" json:"ticket_code"`
	SessionID     *uuid.UUID         `gorm:"type:uuid;index" json:"session_id,omitempty"`
	Items         []OrderItem        `gorm:"type:jsonb;serializer:json" json:"items"`
	Subtotal      int64              `gorm:"not null" json:"subtotal"`
	TaxRate       int64              `gorm:"default:0" json:"tax_rate"`
	TaxAmount     int64              `gorm:"default:0" json:"tax_amount"`
	Total         int64              `gorm:"not null" json:"total"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	AmountPaid    int64              `gorm:"not null" json:"amount_paid"`
	ChangeAmount  int64              `gorm:"default:0" json:"change_amount"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
}

// ItemsTotal sums quantity x unit price across all line items. It must always
// equal Total; RecordSale computes Total from it.
func (o *Order) ItemsTotal() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.LineTotal()
	}
	return sum
}

// ItemCount returns the number of articles across all lines.
func (o *Order) ItemCount() int {
	var n int
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
