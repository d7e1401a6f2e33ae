package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-statement atomic operations across
// repositories. The ledger insert and the balance update of a posted
// transaction must commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the transaction in
	// ctx, or to the base connection when no transaction is active
	GetUserRepository(ctx context.Context) UserRepository

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
