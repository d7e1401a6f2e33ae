package handler

import (
	"net/http"

	domainerr "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/domain/port/usecase"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/dto"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUsecase usecase.TransactionUsecase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUsecase usecase.TransactionUsecase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
		logger:             logger,
	}
}

// Post handles the POST /v1/accounts/{accountId}/transactions endpoint
func (h *TransactionHandler) Post(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	accountID, ok := pathID(c, "accountId", domainerr.CodeInvalidInput, "Invalid account ID format")
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Transaction type and amount are required",
		})
		return
	}

	transaction, err := h.transactionUsecase.Post(c.Request.Context(), userID, accountID, req.Type, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"accountId": accountID,
			"type":      req.Type,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.FromTransaction(transaction))
}

// List handles the GET /v1/accounts/{accountId}/transactions endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	accountID, ok := pathID(c, "accountId", domainerr.CodeInvalidInput, "Invalid account ID format")
	if !ok {
		return
	}

	transactions, err := h.transactionUsecase.List(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"accountId": accountID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromTransactions(transactions))
}

// Get handles the GET /v1/accounts/{accountId}/transactions/{transactionId} endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	accountID, ok := pathID(c, "accountId", domainerr.CodeInvalidInput, "Invalid account ID format")
	if !ok {
		return
	}

	transactionID, ok := pathID(c, "transactionId", domainerr.CodeInvalidInput, "Invalid transaction ID format")
	if !ok {
		return
	}

	transaction, err := h.transactionUsecase.Get(c.Request.Context(), userID, accountID, transactionID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":        userID,
			"accountId":     accountID,
			"transactionId": transactionID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromTransaction(transaction))
}
