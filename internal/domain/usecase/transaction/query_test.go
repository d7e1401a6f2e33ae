package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	persistencemocks "github.com/eaglebank/eagle-bank/mocks/port/persistence"
	usecasemocks "github.com/eaglebank/eagle-bank/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Owner can read a ledger entry", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockAccounts := usecasemocks.NewMockAccountUsecase(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		acct := &entity.Account{ID: 10, UserID: 1}
		stored := &entity.Transaction{ID: 100, AccountID: 10, Type: entity.TransactionTypeDeposit, AmountCents: 1000, CreatedAt: fixedTime}

		mockAccounts.EXPECT().Get(mock.Anything, uint64(1), uint64(10)).Return(acct, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo).Once()
		mockTxnRepo.EXPECT().GetByID(mock.Anything, uint64(10), uint64(100)).Return(stored, nil).Once()

		svc := NewService(mockUow, mockAccounts, mockTime, mockLogger)

		txn, err := svc.Get(ctx, 1, 10, 100)

		require.NoError(t, err)
		assert.Equal(t, uint64(100), txn.ID)
	})

	t.Run("Account gate failure short-circuits the lookup", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := usecasemocks.NewMockAccountUsecase(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAccounts.EXPECT().Get(mock.Anything, uint64(1), uint64(10)).Return(nil, errs.ErrForbidden).Once()

		svc := NewService(mockUow, mockAccounts, mockTime, mockLogger)

		txn, err := svc.Get(ctx, 1, 10, 100)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Entry under a different account is not found", func(t *testing.T) {
		// The repository lookup is scoped to the account, so an id that
		// exists elsewhere never leaks.
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockAccounts := usecasemocks.NewMockAccountUsecase(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		acct := &entity.Account{ID: 10, UserID: 1}
		mockAccounts.EXPECT().Get(mock.Anything, uint64(1), uint64(10)).Return(acct, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo).Once()
		mockTxnRepo.EXPECT().GetByID(mock.Anything, uint64(10), uint64(555)).Return(nil, errs.ErrTransactionNotFound).Once()

		svc := NewService(mockUow, mockAccounts, mockTime, mockLogger)

		txn, err := svc.Get(ctx, 1, 10, 555)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns entries in creation order", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTxnRepo := persistencemocks.NewMockTransactionRepository(t)
		mockAccounts := usecasemocks.NewMockAccountUsecase(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		acct := &entity.Account{ID: 10, UserID: 1}
		entries := []*entity.Transaction{
			{ID: 1, AccountID: 10, Type: entity.TransactionTypeDeposit, AmountCents: 1000, CreatedAt: fixedTime},
			{ID: 2, AccountID: 10, Type: entity.TransactionTypeWithdrawal, AmountCents: 500, CreatedAt: fixedTime.Add(time.Minute)},
		}

		mockAccounts.EXPECT().Get(mock.Anything, uint64(1), uint64(10)).Return(acct, nil).Once()
		mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo).Once()
		mockTxnRepo.EXPECT().ListByAccount(mock.Anything, uint64(10)).Return(entries, nil).Once()

		svc := NewService(mockUow, mockAccounts, mockTime, mockLogger)

		txns, err := svc.List(ctx, 1, 10)

		require.NoError(t, err)
		require.Len(t, txns, 2)
		assert.Equal(t, uint64(1), txns[0].ID)
		assert.Equal(t, uint64(2), txns[1].ID)
	})

	t.Run("Gate failure propagates", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAccounts := usecasemocks.NewMockAccountUsecase(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockAccounts.EXPECT().Get(mock.Anything, uint64(1), uint64(99)).Return(nil, errs.ErrAccountNotFound).Once()

		svc := NewService(mockUow, mockAccounts, mockTime, mockLogger)

		txns, err := svc.List(ctx, 1, 99)

		assert.Nil(t, txns)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
