package transaction

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
)

// Get returns one ledger entry. The account gate (existence then ownership) is
// reused from the account usecase, not reimplemented here; only after it
// passes is the transaction looked up, scoped to the account so an id under a
// different account yields ErrTransactionNotFound.
func (s *Service) Get(ctx context.Context, userID, accountID, transactionID uint64) (*entity.Transaction, error) {
	if _, err := s.accounts.Get(ctx, userID, accountID); err != nil {
		return nil, err
	}

	return s.uow.GetTransactionRepository(ctx).GetByID(ctx, accountID, transactionID)
}

// List returns the account's ledger entries in creation order after the same gate
func (s *Service) List(ctx context.Context, userID, accountID uint64) ([]*entity.Transaction, error) {
	if _, err := s.accounts.Get(ctx, userID, accountID); err != nil {
		return nil, err
	}

	return s.uow.GetTransactionRepository(ctx).ListByAccount(ctx, accountID)
}
