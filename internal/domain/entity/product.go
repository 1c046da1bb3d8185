package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents an item of the static equipment catalog.
// The catalog is seeded at startup and read-only from the API's
// perspective; requests reference products by name.
type Product struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name        string               `gorm:"size:255;unique;not null" json:"name"`
	Category    enum.ProductCategory `gorm:"size:100;not null;index" json:"category"`
	Description string               `gorm:"type:text" json:"description"`
	Price       int64                `gorm:"not null" json:"price"` // integer rubles
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
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
