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
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	classifier   *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		classifier:   NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to a domain entity
func (r *AccountRepository) modelToEntity(m *model.Account) *entity.Account {
	acct := &entity.Account{
		ID:        m.ID,
		Type:      entity.AccountType(m.Type),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	acct.SetBalance(m.Balance, r.timeProvider)
	acct.UpdatedAt = m.UpdatedAt
	return acct
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.classifier.IsForeignKeyError(err) {
		return errs.ErrUserNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new account and backfills the assigned id
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		Type:      string(account.Type),
		Balance:   account.Balance(),
		UserID:    account.UserID,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&accountModel); result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error)
	}

	account.ID = accountModel.ID
	r.logger.Debug("Account row created", map[string]any{
		"account_id": account.ID,
		"user_id":    account.UserID,
	})
	return nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	if result := r.db.WithContext(ctx).First(&accountModel, id); result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error)
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByIDForUpdate retrieves an account holding an exclusive row lock.
// Concurrent posts to the same account serialize here.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&accountModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error)
	}

	return r.modelToEntity(&accountModel), nil
}

// ListByUser returns all accounts owned by a user in creation order
func (r *AccountRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&accountModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error)
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, r.modelToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// UpdateBalance sets the account balance to the given value in cents
func (r *AccountRepository) UpdateBalance(ctx context.Context, accountID uint64, balanceCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"balance":    balanceCents,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// Delete permanently removes an account row
func (r *AccountRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Account{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting account", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account row deleted", map[string]any{
		"account_id": id,
	})
	return nil
}
