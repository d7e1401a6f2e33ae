package transaction

import (
	"context"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	"github.com/eaglebank/eagle-bank/internal/domain/usecase/account"
)

// Post appends a ledger entry and applies its signed effect to the account
// balance. The flow is a hard contract:
//  1. validate type and amount before any store access
//  2. lock the account row, existence before ownership
//  3. reject a withdrawal exceeding the balance with nothing written
//  4. insert the ledger entry and update the balance in the same transaction
func (s *Service) Post(ctx context.Context, userID, accountID uint64, transactionType, amount string) (*entity.Transaction, error) {
	// NewTransaction performs all input validation; nothing has touched the
	// store yet when it fails.
	txn, err := entity.NewTransaction(accountID, transactionType, amount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	accountRepo := s.uow.GetAccountRepository(txCtx)

	// Row lock serializes concurrent posts to the same account at the store level.
	acct, err := accountRepo.GetByIDForUpdate(txCtx, accountID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := account.Authorize(userID, acct); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Transaction posting denied", map[string]any{
			"account_id":   accountID,
			"requester_id": userID,
			"owner_id":     acct.UserID,
		})
		return nil, err
	}

	if txn.IsWithdrawal() && !acct.CanCover(txn.AmountCents) {
		_ = s.uow.Rollback(txCtx)
		insufficientErr := errs.NewInsufficientFundsError(accountID, txn.FormattedAmount(), acct.FormattedBalance())
		s.logger.Warn("Withdrawal rejected", insufficientErr.(*errs.InsufficientFundsError).LogFields())
		return nil, insufficientErr
	}

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	newBalance := acct.Balance() + txn.Delta()
	if err := accountRepo.UpdateBalance(txCtx, accountID, newBalance); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction posted", map[string]any{
		"transaction_id": txn.ID,
		"account_id":     accountID,
		"type":           string(txn.Type),
		"amount":         txn.FormattedAmount(),
		"new_balance":    entity.CentsToString(newBalance),
	})
	return txn, nil
}
