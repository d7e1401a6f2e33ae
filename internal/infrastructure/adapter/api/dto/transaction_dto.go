package dto

import "github.com/eaglebank/eagle-bank/internal/domain/entity"

// CreateTransactionRequest represents the API request for posting a
// transaction. The amount travels as a decimal string so "10.10" survives
// the trip without floating point drift.
type CreateTransactionRequest struct {
	Type   string `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents the API view of a ledger entry
type TransactionResponse struct {
	ID        uint64 `json:"id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	AccountID uint64 `json:"accountId"`
}

// FromTransaction converts a transaction entity to its API response
func FromTransaction(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID,
		Type:      string(transaction.Type),
		Amount:    transaction.FormattedAmount(),
		AccountID: transaction.AccountID,
	}
}

// FromTransactions converts a slice of transaction entities to API responses
func FromTransactions(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, FromTransaction(transaction))
	}
	return responses
}
