// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create stores a new transaction and assigns its generated ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrTransactionNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindAll retrieves every transaction, newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByPerson retrieves the transactions of a person, newest first.
	FindByPerson(ctx context.Context, personID int64) ([]*entity.Transaction, error)

	// FindByCategory retrieves the transactions of a category, newest first.
	FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Transaction, error)

	// UpdateStatus persists the active flag of a transaction.
	UpdateStatus(ctx context.Context, transaction *entity.Transaction) error
}
