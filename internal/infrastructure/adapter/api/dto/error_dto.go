package dto

import domainerr "github.com/eaglebank/eagle-bank/internal/domain/error"

// ErrorResponse is the uniform error body returned by every endpoint
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FromError builds the API error body for a domain error
func FromError(err error) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.Message(err),
	}
}
