package security

import "errors"

// Token verification failures. The transport layer maps these to distinct
// status codes, so they are part of the port contract.
var (
	// ErrTokenInvalid is returned for a missing, expired or badly signed credential
	ErrTokenInvalid = errors.New("invalid credential")

	// ErrIdentityClaimMissing is returned when a valid credential carries no identity claim
	ErrIdentityClaimMissing = errors.New("credential did not contain an identity claim")

	// ErrIdentityClaimMalformed is returned when the identity claim is not a usable user id
	ErrIdentityClaimMalformed = errors.New("credential identity claim is malformed")
)

// TokenIssuer mints and validates the bearer credential issued at login. A
// valid credential's embedded user id is trusted as the authenticated identity
// without further checks.
type TokenIssuer interface {
	// Issue mints a signed credential binding the user's id, with the
	// configured issuer, audience and expiry
	Issue(userID uint64) (string, error)

	// Verify validates a credential and extracts the embedded user id
	Verify(token string) (uint64, error)
}
