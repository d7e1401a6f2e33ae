package usecase

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// TransactionUsecase defines the ledger operations exposed to the API layer
type TransactionUsecase interface {
	// Post appends a ledger entry and atomically applies its signed effect to
	// the account balance. A withdrawal exceeding the balance fails with
	// ErrInsufficientFunds and leaves both the ledger and the balance untouched.
	Post(ctx context.Context, userID, accountID uint64, transactionType, amount string) (*entity.Transaction, error)

	// Get returns one ledger entry after the account existence then ownership
	// gate; ids under a different account yield ErrTransactionNotFound
	Get(ctx context.Context, userID, accountID, transactionID uint64) (*entity.Transaction, error)

	// List returns the account's ledger entries in creation order after the
	// same gate
	List(ctx context.Context, userID, accountID uint64) ([]*entity.Transaction, error)
}
