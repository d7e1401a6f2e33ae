package persistence

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// AccountRepository defines the methods to interact with account data
type AccountRepository interface {
	// Create stores a new account and assigns its id.
	//
	// Possible errors:
	// - ErrUserNotFound: if the owning user does not exist (foreign key)
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, account *entity.Account) error

	// GetByID retrieves an account by id.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with that id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account by id holding an exclusive row lock.
	// Only meaningful inside a unit of work; concurrent posts to the same
	// account serialize on this lock.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with that id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// ListByUser returns all accounts owned by a user. An empty slice is a
	// valid result, not an error.
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// UpdateBalance sets the account balance to the given value in cents.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account row disappeared
	// - ErrDatabaseConnection: if the database is unreachable
	UpdateBalance(ctx context.Context, accountID uint64, balanceCents int64) error

	// Delete permanently removes an account row.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with that id exists
	// - ErrDatabaseConnection: if the database is unreachable
	Delete(ctx context.Context, id uint64) error
}
