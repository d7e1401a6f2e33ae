package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID        uint64    `gorm:"primaryKey"`
	Type      string    `gorm:"not null"`
	Balance   int64     `gorm:"not null"` // Balance in cents
	UserID    uint64    `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
