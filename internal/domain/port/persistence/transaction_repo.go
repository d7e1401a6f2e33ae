package persistence

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with ledger entries.
// Ledger entries are write-once: there is no update operation.
type TransactionRepository interface {
	// Create appends a new ledger entry and assigns its id.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the owning account does not exist (foreign key)
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a ledger entry by id, scoped to the given account.
	// An id that exists under a different account yields ErrTransactionNotFound
	// so existence never leaks across accounts.
	GetByID(ctx context.Context, accountID, transactionID uint64) (*entity.Transaction, error)

	// ListByAccount returns all ledger entries of an account in creation order.
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.Transaction, error)

	// DeleteByAccount removes all ledger entries of an account. Used only when
	// the account itself is deleted.
	DeleteByAccount(ctx context.Context, accountID uint64) error
}
