package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	secport "github.com/eaglebank/eagle-bank/internal/domain/port/security"
	coremocks "github.com/eaglebank/eagle-bank/mocks/port/core"
	securitymocks "github.com/eaglebank/eagle-bank/mocks/port/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// protectedRouter wires the middleware in front of a probe handler that
// reports the authenticated user id
func protectedRouter(tokens secport.TokenIssuer, logger *coremocks.MockLogger) *gin.Engine {
	router := gin.New()
	router.GET("/probe", Authorized(tokens, logger), func(c *gin.Context) {
		userID, ok := AuthenticatedUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestAuthorized(t *testing.T) {
	t.Run("Valid credential passes the user id through", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTokens.EXPECT().Verify("good-token").Return(uint64(42), nil).Once()

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":42}`, w.Body.String())
	})

	t.Run("Missing header is unauthorized", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Non-bearer header is unauthorized", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid credential is unauthorized", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTokens.EXPECT().Verify("bad-token").Return(uint64(0), secport.ErrTokenInvalid).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid credential without an identity claim is forbidden", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTokens.EXPECT().Verify("anonymous-token").Return(uint64(0), secport.ErrIdentityClaimMissing).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer anonymous-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Malformed identity claim is a bad request", func(t *testing.T) {
		mockTokens := securitymocks.NewMockTokenIssuer(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTokens.EXPECT().Verify("weird-token").Return(uint64(0), secport.ErrIdentityClaimMalformed).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		router := protectedRouter(mockTokens, mockLogger)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer weird-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthenticatedUserID(t *testing.T) {
	t.Run("Absent key", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := AuthenticatedUserID(c)

		assert.False(t, ok)
	})

	t.Run("Present key", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(UserIDKey, uint64(7))

		userID, ok := AuthenticatedUserID(c)

		assert.True(t, ok)
		assert.Equal(t, uint64(7), userID)
	})
}
