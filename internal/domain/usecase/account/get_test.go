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

func TestGetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner can read the account", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Account{ID: 10, UserID: 1, Type: entity.AccountTypeCurrent}
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(stored, nil).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Get(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, uint64(10), acct.ID)
	})

	t.Run("Missing account is not found, not forbidden", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrAccountNotFound).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Get(ctx, 1, 99)

		assert.Nil(t, acct)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Someone else's account is forbidden", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockAcctRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.Account{ID: 10, UserID: 2, Type: entity.AccountTypeCurrent}
		mockUow.EXPECT().GetAccountRepository(mock.Anything).Return(mockAcctRepo).Once()
		mockAcctRepo.EXPECT().GetByID(mock.Anything, uint64(10)).Return(stored, nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		svc := NewService(mockUow, mockTime, mockLogger)

		acct, err := svc.Get(ctx, 1, 10)

		assert.Nil(t, acct)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("Owner passes", func(t *testing.T) {
		acct := &entity.Account{ID: 1, UserID: 7}
		assert.NoError(t, Authorize(7, acct))
	})

	t.Run("Non-owner fails", func(t *testing.T) {
		acct := &entity.Account{ID: 1, UserID: 7}
		assert.ErrorIs(t, Authorize(8, acct), errs.ErrForbidden)
	})
}
