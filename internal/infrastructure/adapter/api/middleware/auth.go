package middleware

import (
	"errors"
	"net/http"
	"strings"

	domainerr "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	secport "github.com/eaglebank/eagle-bank/internal/domain/port/security"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the authenticated user id is stored
const UserIDKey = "authUserID"

// Authorized verifies the bearer credential on every protected route and puts
// the embedded user id into the request context. The failure modes map to
// distinct statuses: no usable token is 401, a valid token without an
// identity claim is 403, and a malformed identity claim is 400.
func Authorized(tokens secport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "missing bearer credential",
			})
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Credential rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			switch {
			case errors.Is(err, secport.ErrIdentityClaimMissing):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
					Code:    domainerr.CodeForbidden,
					Message: err.Error(),
				})
			case errors.Is(err, secport.ErrIdentityClaimMalformed):
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
					Code:    domainerr.CodeInvalidInput,
					Message: err.Error(),
				})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Code:    domainerr.CodeInvalidCredentials,
					Message: "invalid bearer credential",
				})
			}
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthenticatedUserID extracts the user id placed by Authorized
func AuthenticatedUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
