package account

import (
	"context"
	"testing"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	persistencemocks "github.com/eaglebank/eagle-bank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the account and its ledger in one unit of work", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Account{ID: 10, UserID: 1, Type: entity.AccountTypeCurrent}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Times(2)
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(stored, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo).Once()
		mockTxnRepo.EXPECT().DeleteByAccount(mock.Anything, uint64(10)).Return(nil).Once()
		mockAcctRepo.EXPECT().Delete(mock.Anything, uint64(10)).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Delete(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, uint64(10), acct.ID)
	})

	t.Run("Missing account rolls back with not found", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrAccountNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Delete(ctx, 1, 99)

		assert.Nil(t, acct)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Non-owner rolls back with forbidden", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Account{ID: 10, UserID: 2, Type: entity.AccountTypeCurrent}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(stored, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Delete(ctx, 1, 10)

		assert.Nil(t, acct)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Ledger deletion failure rolls back the whole operation", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Account{ID: 10, UserID: 1, Type: entity.AccountTypeCurrent}
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(stored, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo).Once()
		mockTxnRepo.EXPECT().DeleteByAccount(mock.Anything, uint64(10)).Return(errs.ErrDatabaseConnection).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Delete(ctx, 1, 10)

		assert.Nil(t, acct)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
