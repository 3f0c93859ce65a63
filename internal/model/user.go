package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a user's postal address. All fields are free text. The record is
// only ever replaced as a whole, never merged field by field.
type Address struct {
	Flat     string `json:"flat" gorm:"size:255"`
	Landmark string `json:"landmark" gorm:"size:255"`
	Street   string `json:"street" gorm:"size:255"`
	City     string `json:"city" gorm:"size:255"`
	State    string `json:"state" gorm:"size:255"`
	Country  string `json:"country" gorm:"size:255"`
	Pin      string `json:"pin" gorm:"size:32"`
	Mobile   string `json:"mobile" gorm:"size:32"`
}

// BlankAddress is the placeholder address every user starts with. The fields
// hold a single space, matching what existing clients expect to render.
func BlankAddress() Address {
	return Address{
		Flat:     " ",
		Landmark: " ",
		Street:   " ",
		City:     " ",
		State:    " ",
		Country:  " ",
		Pin:      " ",
		Mobile:   " ",
	}
}

// User represents a registered shopper.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Avatar       string    `json:"avatar" gorm:"size:512"`
	Address      Address   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
