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

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUsecase usecase.UserUsecase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Register handles the POST /v1/users endpoint
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Username and password are required",
		})
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"username": req.Username})
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login handles the POST /v1/users/login endpoint
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Username and password are required",
		})
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"username": req.Username})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:    user.ID,
		Token: token,
	})
}

// Fetch handles the GET /v1/users/{userId} endpoint
func (h *UserHandler) Fetch(c *gin.Context) {
	requesterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Authentication required",
		})
		return
	}

	targetID, ok := pathID(c, "userId", domainerr.CodeInvalidInput, "Invalid user ID format")
	if !ok {
		return
	}

	user, err := h.userUsecase.Fetch(c.Request.Context(), requesterID, targetID)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"requesterId": requesterID,
			"userId":      targetID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}
