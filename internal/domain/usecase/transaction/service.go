package transaction

import (
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/domain/port/persistence"
	usecaseport "github.com/eaglebank/eagle-bank/internal/domain/port/usecase"
)

// Service implements transaction posting and lookup. Posting is the one place
// with a genuine invariant to protect: the ledger insert and the balance
// update commit in the same unit of work, and a failed withdrawal leaves both
// untouched.
type Service struct {
	uow          persistence.UnitOfWork
	accounts     usecaseport.AccountUsecase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transaction service. The account usecase supplies
// the shared existence-then-ownership gate for read operations.
func NewService(
	uow persistence.UnitOfWork,
	accounts usecaseport.AccountUsecase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		accounts:     accounts,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
