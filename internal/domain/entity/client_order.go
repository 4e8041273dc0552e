package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ClientOrderLine mirrors the storefront cart line the customer built online:
// a named article with its chosen options and computed price.
type ClientOrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Note     string `json:"note,omitempty"`
}

// ClientOrder is an online storefront order handed off to the shop. It lives
// outside the cash reconciliation: only register orders count toward shift and
// day totals, an online order enters the ledger when staff ring it up.
type ClientOrder struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	Phone           string                 `gorm:"size:30;not null" json:"phone"`
	DeliveryType    string                 `gorm:"size:30;not null" json:"delivery_type"`
	DeliveryAddress *string                `gorm:"type:text" json:"delivery_address,omitempty"`
	OrderType       string                 `gorm:"size:30;default:'standard'" json:"order_type"`
	Lines           []ClientOrderLine      `gorm:"column:order_details;type:jsonb;serializer:json" json:"order_details"`
	Status          enum.ClientOrderStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	Total           int64                  `gorm:"default:0" json:"total"`
	CreatedAt       time.Time              `gorm:"index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new client order
func (o *ClientOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClientOrder model
func (ClientOrder) TableName() string {
	return "client_orders"
}
