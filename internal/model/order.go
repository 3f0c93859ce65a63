package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// Order represents a user's order: a list of items and a server-computed total.
type Order struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(20,2);not null"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItem is one product line within an order. Price is the unit price at
// the time of ordering, kept independent of later catalog changes.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:char(36);not null;index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:char(36);not null;index"`
	Qty       int             `json:"qty" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
