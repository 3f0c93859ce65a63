package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment records a payment made against an order. The gateway interaction
// happens client-side; this is pass-through persistence of the result.
type Payment struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Provider  string          `json:"provider" gorm:"size:64;not null"`
	Reference string          `json:"reference" gorm:"size:255;not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
