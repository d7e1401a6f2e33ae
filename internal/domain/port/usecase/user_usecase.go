package usecase

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// UserUsecase defines the identity operations exposed to the API layer
type UserUsecase interface {
	// Register creates a new user from a username and plaintext password.
	// Fails with ErrMissingUsername/ErrMissingPassword on empty input and
	// ErrDuplicateUsername when the name is taken.
	Register(ctx context.Context, username, password string) (*entity.User, error)

	// Login authenticates and returns the user together with a signed
	// credential. Fails with the undifferentiated ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*entity.User, string, error)

	// Fetch returns a user's public details. Self-lookup only: existence is
	// checked before ownership, so a missing target yields ErrUserNotFound
	// even for a mismatched requester.
	Fetch(ctx context.Context, requesterID, targetID uint64) (*entity.User, error)
}
