package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog categories. The storefront only knows these three.
const (
	CategoryMen   = "MEN"
	CategoryWomen = "WOMEN"
	CategoryKids  = "KIDS"
)

// Product represents one catalog entry.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Brand       string          `json:"brand" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Qty         int             `json:"qty" gorm:"not null"`
	Image       string          `json:"image" gorm:"size:512"`
	Category    string          `json:"category" gorm:"size:20;not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Usage       string          `json:"usage" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
