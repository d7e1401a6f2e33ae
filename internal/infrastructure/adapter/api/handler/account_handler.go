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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUsecase usecase.AccountUsecase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		logger:         logger,
	}
}

// Create handles the POST /v1/accounts endpoint
func (h *AccountHandler) Create(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Account type must be current or savings",
		})
		return
	}

	account, err := h.accountUsecase.Create(c.Request.Context(), userID, req.Type)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"userId": userID})
		return
	}

	c.JSON(http.StatusCreated, dto.FromAccount(account))
}

// List handles the GET /v1/accounts endpoint
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	accounts, err := h.accountUsecase.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"userId": userID})
		return
	}

	c.JSON(http.StatusOK, dto.FromAccounts(accounts))
}

// Get handles the GET /v1/accounts/{accountId} endpoint
func (h *AccountHandler) Get(c *gin.Context) {
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

	account, err := h.accountUsecase.Get(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"accountId": accountID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(account))
}

// Delete handles the DELETE /v1/accounts/{accountId} endpoint
func (h *AccountHandler) Delete(c *gin.Context) {
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

	account, err := h.accountUsecase.Delete(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"userId":    userID,
			"accountId": accountID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromAccount(account))
}
