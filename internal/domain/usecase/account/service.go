package account

import (
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/domain/port/persistence"
)

// Service implements the account lifecycle: create, list, get and delete.
// Every operation on a specific account goes through the same
// existence-then-ownership gate.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new account service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
