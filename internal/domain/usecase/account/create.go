package account

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// Create opens a new account owned by the requesting user. The balance starts
// at exactly zero. The requester must still resolve to an existing user row.
func (s *Service) Create(ctx context.Context, userID uint64, accountType string) (*entity.Account, error) {
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	acct, err := entity.NewAccount(userID, accountType, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetAccountRepository(ctx).Create(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id": acct.ID,
		"user_id":    userID,
		"type":       string(acct.Type),
	})
	return acct, nil
}

// List returns all accounts owned by the requesting user. No accounts is an
// empty slice, not an error; a missing requester row is ErrUserNotFound.
func (s *Service) List(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.uow.GetAccountRepository(ctx).ListByUser(ctx, userID)
}
