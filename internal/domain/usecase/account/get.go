package account

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// Get returns one account after the existence-then-ownership gate
func (s *Service) Get(ctx context.Context, userID, accountID uint64) (*entity.Account, error) {
	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := Authorize(userID, acct); err != nil {
		s.logger.Warn("Account access denied", map[string]any{
			"account_id":   accountID,
			"requester_id": userID,
			"owner_id":     acct.UserID,
		})
		return nil, err
	}

	return acct, nil
}
