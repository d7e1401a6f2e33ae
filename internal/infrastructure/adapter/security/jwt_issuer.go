package security

import (
	"fmt"
	"time"

	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	secport "github.com/eaglebank/eagle-bank/internal/domain/port/security"
	"github.com/golang-jwt/jwt"
)

// jwtCustomClaims binds the authenticated user's id to the standard claim set
type jwtCustomClaims struct {
	UserID uint64 `json:"id"`

	jwt.StandardClaims
}

// JWTIssuer implements the TokenIssuer port with HS256-signed JWTs carrying
// the user id, issuer, audience and a fixed expiry.
type JWTIssuer struct {
	secret       []byte
	issuer       string
	audience     string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a new JWT issuer/verifier
func NewJWTIssuer(secret, issuer, audience string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		audience:     audience,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue mints a signed credential binding the user's id
func (i *JWTIssuer) Issue(userID uint64) (string, error) {
	now := i.timeProvider.Now()
	claims := &jwtCustomClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    i.issuer,
			Audience:  i.audience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates a credential and extracts the embedded user id. The three
// failure modes are distinct because the transport maps them to different
// status codes: a bad token, a token without an identity claim, and a token
// whose identity claim is not a usable user id.
func (i *JWTIssuer) Verify(tokenString string) (uint64, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, secport.ErrTokenInvalid
	}

	if !claims.VerifyIssuer(i.issuer, true) || !claims.VerifyAudience(i.audience, true) {
		return 0, secport.ErrTokenInvalid
	}

	raw, ok := claims["id"]
	if !ok {
		return 0, secport.ErrIdentityClaimMissing
	}

	// JSON numbers decode as float64
	id, ok := raw.(float64)
	if !ok || id <= 0 || id != float64(uint64(id)) {
		return 0, secport.ErrIdentityClaimMalformed
	}

	return uint64(id), nil
}
