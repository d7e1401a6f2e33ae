package usecase

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// AccountUsecase defines the account lifecycle operations exposed to the API layer
type AccountUsecase interface {
	// Create opens a new account of the given type for the requesting user,
	// with a balance of exactly zero
	Create(ctx context.Context, userID uint64, accountType string) (*entity.Account, error)

	// List returns all accounts owned by the requesting user; an empty slice
	// is a valid result
	List(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// Get returns one account. Existence is checked before ownership:
	// ErrAccountNotFound for a missing id, ErrForbidden for someone else's.
	Get(ctx context.Context, userID, accountID uint64) (*entity.Account, error)

	// Delete permanently removes an account after the same existence then
	// ownership gate, returning the pre-deletion view
	Delete(ctx context.Context, userID, accountID uint64) (*entity.Account, error)
}
