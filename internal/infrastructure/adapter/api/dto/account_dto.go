package dto

import "github.com/eaglebank/eagle-bank/internal/domain/entity"

// CreateAccountRequest represents the API request for opening an account
type CreateAccountRequest struct {
	Type string `json:"type" binding:"required,oneof=current savings"`
}

// AccountResponse represents the API view of an account
type AccountResponse struct {
	ID      uint64 `json:"id"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

// FromAccount converts an account entity to its API response
func FromAccount(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:      account.ID,
		Type:    string(account.Type),
		Balance: account.FormattedBalance(),
	}
}

// FromAccounts converts a slice of account entities to API responses
func FromAccounts(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, FromAccount(account))
	}
	return responses
}
