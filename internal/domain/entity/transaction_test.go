package entity

import (
	"testing"
	"time"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid deposit", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(5, "deposit", "10.15", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(5), txn.AccountID)
		assert.Equal(t, TransactionTypeDeposit, txn.Type)
		assert.Equal(t, int64(1015), txn.AmountCents)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Valid withdrawal", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(5, "withdrawal", "25", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TransactionTypeWithdrawal, txn.Type)
		assert.Equal(t, int64(2500), txn.AmountCents)
	})

	t.Run("Invalid type", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(5, "transfer", "10.00", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})

	t.Run("Zero amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(5, "deposit", "0.00", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})

	t.Run("Negative amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(5, "deposit", "-10.00", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(5, "deposit", "ten", mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionDelta(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Deposit is positive", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, "deposit", "10.00", mockTime)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), txn.Delta())
		assert.False(t, txn.IsWithdrawal())
	})

	t.Run("Withdrawal is negative", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, "withdrawal", "10.00", mockTime)
		require.NoError(t, err)

		assert.Equal(t, int64(-1000), txn.Delta())
		assert.True(t, txn.IsWithdrawal())
	})
}

func TestTransactionFormattedAmount(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	txn, err := NewTransaction(1, "deposit", "10.1", mockTime)
	require.NoError(t, err)

	assert.Equal(t, "10.10", txn.FormattedAmount())
}
