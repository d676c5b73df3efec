package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the catalog entry. Orders never reference it live — every order
// line carries a snapshot of name/price/image taken at checkout, so a product
// can be hard-deleted without touching order history.
type Product struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	NameAr    string    `json:"name_ar" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	ImageURL  *string   `json:"imageUrl"`
	InStock   int       `json:"inStock" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
