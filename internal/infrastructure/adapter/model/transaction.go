package model

import (
	"time"
)

// Transaction represents the database model for ledger entries. Rows are
// insert-only; there is no UpdatedAt.
type Transaction struct {
	ID        uint64    `gorm:"primaryKey"`
	AccountID uint64    `gorm:"index;not null"`
	Type      string    `gorm:"not null"`
	Amount    int64     `gorm:"not null"` // Amount in cents, always positive
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
