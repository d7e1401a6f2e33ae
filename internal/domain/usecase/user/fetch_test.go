package user

import (
	"context"
	"testing"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	persistencemocks "github.com/eaglebank/eagle-bank/mocks/port/persistence"
	securitymocks "github.com/eaglebank/eagle-bank/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Self lookup succeeds", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := securitymocks.NewMockPasswordHasher(t)
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.User{ID: 1, Username: "alice"}
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(stored, nil).Once()

		svc := NewService(mockRepo, mockHasher, mockTokens, mockTime, mockLogger)

		user, err := svc.Fetch(ctx, 1, 1)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Another user's details are forbidden", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := securitymocks.NewMockPasswordHasher(t)
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.User{ID: 2, Username: "bob"}
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(stored, nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		svc := NewService(mockRepo, mockHasher, mockTokens, mockTime, mockLogger)

		user, err := svc.Fetch(ctx, 1, 2)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Missing target is not found even for a mismatched requester", func(t *testing.T) {
		// Existence wins over ownership: 404 for a missing id, never 403.
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockHasher := securitymocks.NewMockPasswordHasher(t)
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(mockRepo, mockHasher, mockTokens, mockTime, mockLogger)

		user, err := svc.Fetch(ctx, 1, 99)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
