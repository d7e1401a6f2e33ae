package security

import (
	secport "github.com/eaglebank/eagle-bank/internal/domain/port/security"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher port with bcrypt. Salting is
// handled by bcrypt itself; the cost factor is fixed at the library default.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new bcrypt-based password hasher
func NewBcryptHasher() secport.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of a plaintext password
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches the stored hash
func (h *BcryptHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
