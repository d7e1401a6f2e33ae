package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
	coreport "github.com/eaglebank/eagle-bank/internal/domain/port/core"
	"github.com/eaglebank/eagle-bank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.classifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUsername
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new user and backfills the assigned id
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	user.ID = userModel.ID
	r.logger.Debug("User row created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if result := r.db.WithContext(ctx).First(&userModel, id); result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error)
	}

	return userModelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	if result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel); result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error)
	}

	return userModelToEntity(&userModel), nil
}
