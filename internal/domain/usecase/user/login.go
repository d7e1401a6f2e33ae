package user

import (
	"context"
	"errors"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
)

// Login authenticates a user and mints a bearer credential embedding the
// user's id. Unknown username and wrong password both return
// ErrInvalidCredentials so the response never reveals which one failed.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, "", errs.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Warn("Login failed, password mismatch", map[string]any{
			"user_id": user.ID,
		})
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("Failed to issue credential", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, "", errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})
	return user, token, nil
}
