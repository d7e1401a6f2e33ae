package entity

import (
	"strings"
	"time"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
)

// User represents a registered identity. The password hash is opaque to the
// domain; hashing and verification belong to the security collaborator.
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name, immutable after creation
	PasswordHash string    // One-way salted hash, never the plaintext
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with the given username and an already-hashed password
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrMissingUsername
	}
	if passwordHash == "" {
		return nil, errs.ErrMissingPassword
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
