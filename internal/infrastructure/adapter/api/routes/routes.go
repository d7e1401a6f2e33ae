package routes

import (
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	securityport "github.com/eaglebank/eagle-bank/internal/domain/port/security"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/handler"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens securityport.TokenIssuer,
	logger coreport.Logger,
	userHandler *handler.UserHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
) {
	v1 := router.Group("/v1")

	// Public routes: registration and login need no credential
	v1.POST("/users", userHandler.Register)
	v1.POST("/users/login", userHandler.Login)

	// Everything else requires a valid bearer token
	authorized := v1.Group("")
	authorized.Use(middleware.Authorized(tokens, logger))
	{
		authorized.GET("/users/:userId", userHandler.Fetch)

		authorized.POST("/accounts", accountHandler.Create)
		authorized.GET("/accounts", accountHandler.List)
		authorized.GET("/accounts/:accountId", accountHandler.Get)
		authorized.DELETE("/accounts/:accountId", accountHandler.Delete)

		authorized.POST("/accounts/:accountId/transactions", transactionHandler.Post)
		authorized.GET("/accounts/:accountId/transactions", transactionHandler.List)
		authorized.GET("/accounts/:accountId/transactions/:transactionId", transactionHandler.Get)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
