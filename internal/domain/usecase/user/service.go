package user

import (
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/domain/port/persistence"
	"github.com/eaglebank/eagle-bank/internal/domain/port/security"
)

// Service implements the identity operations: registration, login and
// self-lookup. Password hashing and credential issuance are collaborators
// behind ports; the service never sees a hash format or a token layout.
type Service struct {
	users        persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service
func NewService(
	users persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
