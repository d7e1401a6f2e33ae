package entity

import (
	"fmt"
	"time"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
)

// AccountType is the enumerated kind of an account
type AccountType string

// Account types
const (
	AccountTypeCurrent AccountType = "current"
	AccountTypeSavings AccountType = "savings"
)

// Account is a ledger container owned by exactly one user. The owning user id
// never changes after creation; the balance changes only through transaction
// posting.
type Account struct {
	ID        uint64      // Unique identifier for the account
	Type      AccountType // current or savings
	UserID    uint64      // Owning user, immutable after creation
	balance   int64       // Balance in cents to avoid floating point precision issues (private)
	CreatedAt time.Time   // When the account was created
	UpdatedAt time.Time   // When the account was last updated
}

// NewAccount creates a new account for the given owner. Balance starts at exactly zero.
func NewAccount(userID uint64, accountType string, timeProvider coreport.TimeProvider) (*Account, error) {
	if !isValidAccountType(accountType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAccountType, accountType)
	}

	now := timeProvider.Now()
	return &Account{
		Type:      AccountType(accountType),
		UserID:    userID,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (a *Account) Balance() int64 {
	return a.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (a *Account) FormattedBalance() string {
	return CentsToString(a.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balanceCents int64, timeProvider coreport.TimeProvider) {
	a.balance = balanceCents
	a.UpdatedAt = timeProvider.Now()
}

// CanCover checks whether the balance covers a withdrawal of the given amount
func (a *Account) CanCover(amountCents int64) bool {
	return a.balance >= amountCents
}

// IsOwnedBy reports whether the account belongs to the given user
func (a *Account) IsOwnedBy(userID uint64) bool {
	return a.UserID == userID
}

// isValidAccountType validates if the account type is allowed
func isValidAccountType(accountType string) bool {
	return accountType == string(AccountTypeCurrent) || accountType == string(AccountTypeSavings)
}
