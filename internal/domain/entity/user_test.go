package entity

import (
	"testing"
	"time"

	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Username is trimmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("  alice  ", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Missing username", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("   ", "$2a$10$hash", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingUsername)
	})

	t.Run("Missing password hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("alice", "", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingPassword)
	})
}
