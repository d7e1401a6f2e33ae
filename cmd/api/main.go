package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUsecase "github.com/eaglebank/eagle-bank/internal/domain/usecase/account"
	transactionUsecase "github.com/eaglebank/eagle-bank/internal/domain/usecase/transaction"
	userUsecase "github.com/eaglebank/eagle-bank/internal/domain/usecase/user"

	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/handler"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/api/routes"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/database"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/logger"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/repository"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/security"
	timeProvider "github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/time"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("Configuration validation failed: auth.jwtSecret is required")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == "production")
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		LogLevel:        cfg.Logger.Level,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := database.Migrate(dbManager.DB(), appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Persistence layer
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Security adapters
	passwordHasher := security.NewBcryptHasher()
	tokenIssuer := security.NewJWTIssuer(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
		cfg.Auth.TokenTTL,
		tp,
	)

	// Use cases
	userService := userUsecase.NewService(userRepo, passwordHasher, tokenIssuer, tp, appLogger)
	accountService := accountUsecase.NewService(uow, tp, appLogger)
	transactionService := transactionUsecase.NewService(uow, accountService, tp, appLogger)

	// API handlers
	userHandler := handler.NewUserHandler(userService, appLogger)
	accountHandler := handler.NewAccountHandler(accountService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokenIssuer, appLogger, userHandler, accountHandler, transactionHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
