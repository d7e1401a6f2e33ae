package entity

import (
	"fmt"
	"time"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
)

// TransactionType is the enumerated kind of a ledger entry
type TransactionType string

// Transaction types
const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction is an immutable ledger entry. The stored amount is always
// positive; the signed effect on the balance is derived from the type.
type Transaction struct {
	ID          uint64          // Unique identifier for the transaction
	AccountID   uint64          // Owning account, immutable
	Type        TransactionType // deposit or withdrawal
	AmountCents int64           // Amount in cents, always > 0
	CreatedAt   time.Time       // When the transaction was created
}

// NewTransaction creates a new ledger entry with full validation. Both the type
// and the amount are checked here, before any store access.
func NewTransaction(accountID uint64, transactionType string, amount string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if !isValidTransactionType(transactionType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, transactionType)
	}

	amountCents, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		AccountID:   accountID,
		Type:        TransactionType(transactionType),
		AmountCents: amountCents,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Delta returns the signed effect of this transaction on the account balance:
// +amount for a deposit, -amount for a withdrawal.
func (t *Transaction) Delta() int64 {
	if t.Type == TransactionTypeWithdrawal {
		return -t.AmountCents
	}
	return t.AmountCents
}

// IsWithdrawal reports whether this transaction decreases the balance
func (t *Transaction) IsWithdrawal() bool {
	return t.Type == TransactionTypeWithdrawal
}

// FormattedAmount returns the amount as a string with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return CentsToString(t.AmountCents)
}

// isValidTransactionType validates if the transaction type is allowed
func isValidTransactionType(transactionType string) bool {
	return transactionType == string(TransactionTypeDeposit) ||
		transactionType == string(TransactionTypeWithdrawal)
}
