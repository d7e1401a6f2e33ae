package database

import (
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.Transaction{},
	); err != nil {
		logger.Error("Migration failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
