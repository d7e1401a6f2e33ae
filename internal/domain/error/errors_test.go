package error

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing username", ErrMissingUsername, CodeInvalidInput},
		{"missing password", ErrMissingPassword, CodeInvalidInput},
		{"invalid account type", ErrInvalidAccountType, CodeInvalidInput},
		{"invalid transaction type", ErrInvalidTransactionType, CodeInvalidInput},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"zero amount", ErrZeroAmount, CodeInvalidAmount},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"forbidden", ErrForbidden, CodeForbidden},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"duplicate username", ErrDuplicateUsername, CodeDuplicateUsername},
		{"insufficient funds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"unknown error", fmt.Errorf("boom"), CodeInternalServer},
		{"wrapped error", fmt.Errorf("context: %w", ErrAccountNotFound), CodeAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", ErrMissingUsername, http.StatusBadRequest},
		{"invalid amount", ErrInvalidAmount, http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials, http.StatusBadRequest},
		{"not found", ErrAccountNotFound, http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"conflict", ErrDuplicateUsername, http.StatusConflict},
		{"insufficient funds", ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"store failure", ErrDatabaseConnection, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestMessage_HidesInternalDetails(t *testing.T) {
	err := fmt.Errorf("pq: connection refused on 10.0.0.3:5432")
	assert.Equal(t, ErrInternalServer.Error(), Message(err))

	assert.Equal(t, ErrInsufficientFunds.Error(), Message(ErrInsufficientFunds))
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(42, "100.00", "7.00")

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, IsInsufficientFundsError(err))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))

	var detailed *InsufficientFundsError
	assert.ErrorAs(t, err, &detailed)
	assert.Equal(t, uint64(42), detailed.AccountID)

	fields := detailed.LogFields()
	assert.Equal(t, "100.00", fields["amount"])
	assert.Equal(t, "7.00", fields["balance"])
}
