package user

import (
	"context"
	"errors"
	"strings"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
)

// Register creates a new user. Input validation happens before any store
// access; only the one-way hash of the password is ever stored.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrMissingUsername
	}
	if password == "" {
		return nil, errs.ErrMissingPassword
	}

	// Cheap duplicate check first. The unique index on username is what
	// actually guards against a concurrent race; Create maps that violation
	// to the same error.
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		s.logger.Warn("Registration rejected, username taken", map[string]any{
			"username": username,
		})
		return nil, errs.ErrDuplicateUsername
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}
