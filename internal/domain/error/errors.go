package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput        = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidCredentials  = 4010
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040
	CodeAccountNotFound     = 4041
	CodeTransactionNotFound = 4042
	CodeDuplicateUsername   = 4090
	CodeInsufficientFunds   = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingUsername is returned when a registration request has no username
	ErrMissingUsername = errors.New("missing username")

	// ErrMissingPassword is returned when a registration request has no password
	ErrMissingPassword = errors.New("missing password")

	// ErrInvalidAccountType is returned when the account type is not one of the allowed values
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidTransactionType is returned when the transaction type is not deposit or withdrawal
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrZeroAmount is returned when the amount is zero; ledger entries are always positive
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCredentials is returned on login failure. Deliberately undifferentiated:
	// it never reveals whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when the username is already registered
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't
	// exist under the given account
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrForbidden is returned when the resource exists but is owned by another user
	ErrForbidden = errors.New("access to this resource is forbidden")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrZeroAmount):
		return CodeInvalidAmount
	case IsInvalidInputError(err):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the transport layer
// responds with. Unknown errors map to 500 so store failures never leak details.
func HTTPStatus(err error) int {
	switch {
	case IsInvalidInputError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-visible message for a domain error. Internal errors
// collapse to a generic message so store details and stack traces stay inside.
func Message(err error) string {
	if ErrorCode(err) == CodeInternalServer {
		return ErrInternalServer.Error()
	}
	return err.Error()
}

// InsufficientFundsError carries balance details for logging; it matches
// ErrInsufficientFunds through errors.Is.
type InsufficientFundsError struct {
	AccountID uint64
	Amount    string
	Balance   string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %d: requested %s, available %s",
		e.AccountID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID uint64, amount, balance string) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Amount:    amount,
		Balance:   balance,
	}
}

// IsInvalidInputError checks if the error is a request validation error caught
// before any store access
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrMissingUsername) ||
		errors.Is(err, ErrMissingPassword) ||
		errors.Is(err, ErrInvalidAccountType) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrZeroAmount)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsForbiddenError checks if the error is an ownership violation
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
