package persistence

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// Create stores a new user and assigns its id.
	//
	// Possible errors:
	// - ErrDuplicateUsername: if the username is already taken
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with that id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by unique username.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with that username exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
