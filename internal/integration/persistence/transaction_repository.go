// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create stores a new transaction and assigns its generated ID.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.AssignID(transactionModel.ID)
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity()
}

// FindAll retrieves every transaction, newest first.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByPerson retrieves the transactions of a person, newest first.
func (r *transactionRepository) FindByPerson(ctx context.Context, personID int64) ([]*entity.Transaction, error) {
	return r.find(r.db.WithContext(ctx).Where("person_id = ?", personID))
}

// FindByCategory retrieves the transactions of a category, newest first.
func (r *transactionRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Transaction, error) {
	return r.find(r.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

// UpdateStatus persists the active flag of a transaction.
func (r *transactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID()).
		Update("is_active", transaction.IsActive())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) find(query *gorm.DB) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := query.Order("created_at DESC").Order("id DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transaction, err := transactionModels[i].ToEntity()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", transactionModels[i].ID, err)
		}
		transactions[i] = transaction
	}
	return transactions, nil
}
