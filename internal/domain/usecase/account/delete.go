package account

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// Delete permanently removes an account and its ledger entries, returning the
// pre-deletion view. The account row and its transactions go in one unit of
// work so a half-deleted account can never be observed.
func (s *Service) Delete(ctx context.Context, userID, accountID uint64) (*entity.Account, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	acct, err := s.uow.GetAccountRepository(txCtx).GetByID(txCtx, accountID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := Authorize(userID, acct); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Account deletion denied", map[string]any{
			"account_id":   accountID,
			"requester_id": userID,
			"owner_id":     acct.UserID,
		})
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(txCtx).DeleteByAccount(txCtx, accountID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.GetAccountRepository(txCtx).Delete(txCtx, accountID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Account deleted", map[string]any{
		"account_id": accountID,
		"user_id":    userID,
	})
	return acct, nil
}
