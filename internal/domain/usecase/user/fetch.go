package user

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
)

// Fetch returns a user's public details. Self-lookup only. Existence is
// checked before ownership: asking for a non-existent id yields
// ErrUserNotFound even when the requester id matches it.
func (s *Service) Fetch(ctx context.Context, requesterID, targetID uint64) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if requesterID != targetID {
		s.logger.Warn("User details requested by non-owner", map[string]any{
			"requester_id": requesterID,
			"target_id":    targetID,
		})
		return nil, errs.ErrForbidden
	}

	return user, nil
}
