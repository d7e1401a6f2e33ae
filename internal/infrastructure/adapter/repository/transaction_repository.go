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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to a domain entity
func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Type:        entity.TransactionType(m.Type),
		AmountCents: m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.classifier.IsForeignKeyError(err) {
		return errs.ErrAccountNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create appends a new ledger entry and backfills the assigned id
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		AccountID: transaction.AccountID,
		Type:      string(transaction.Type),
		Amount:    transaction.AmountCents,
		CreatedAt: transaction.CreatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&transactionModel); result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction row created", map[string]any{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
	})
	return nil
}

// GetByID retrieves a ledger entry by id scoped to an account. The account_id
// predicate keeps cross-account ids indistinguishable from missing ones.
func (r *TransactionRepository) GetByID(ctx context.Context, accountID, transactionID uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&transactionModel, transactionID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}

	return transactionModelToEntity(&transactionModel), nil
}

// ListByAccount returns all ledger entries of an account in creation order
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id asc").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}

// DeleteByAccount removes all ledger entries of an account
func (r *TransactionRepository) DeleteByAccount(ctx context.Context, accountID uint64) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting transactions", result.Error)
	}
	return nil
}
