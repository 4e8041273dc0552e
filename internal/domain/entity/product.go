package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ProductSize is an optional price variant (M, XL, XXL) for a catalog product.
type ProductSize struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Product represents an item in the register catalog. The register copies the
// name and price into the order at sale time; later catalog edits never affect
// past orders or reconciliation totals.
type Product struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Slug      string               `gorm:"size:255;unique;not null" json:"slug"`
	Price     int64                `gorm:"not null" json:"price"` // base (M) price in CFA francs
	Category  enum.ProductCategory `gorm:"size:20;not null;index" json:"category"`
	Sizes     []ProductSize        `gorm:"type:jsonb;serializer:json" json:"sizes,omitempty"`
	Image     *string              `gorm:"size:255" json:"image,omitempty"`
	Active    bool                 `gorm:"default:true" json:"active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
