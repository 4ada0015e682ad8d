// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/entity"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'BRL'"`
	Description string          `gorm:"type:varchar(400);not null"`
	Type        int16           `gorm:"type:smallint;not null;index"`
	CategoryID  int64           `gorm:"not null;index"`
	PersonID    int64           `gorm:"not null;index"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction aggregate.
func (m *TransactionModel) ToEntity() (*entity.Transaction, error) {
	return entity.RestoreTransaction(entity.RestoreTransactionParams{
		ID:          m.ID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		Type:        valueobject.TransactionType(m.Type),
		CategoryID:  m.CategoryID,
		PersonID:    m.PersonID,
		CreatedAt:   m.CreatedAt,
		IsActive:    m.IsActive,
	})
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction aggregate.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID(),
		Amount:      transaction.Amount().Amount(),
		Currency:    transaction.Amount().Currency(),
		Description: transaction.Description(),
		Type:        int16(transaction.Type()),
		CategoryID:  transaction.CategoryID(),
		PersonID:    transaction.PersonID(),
		IsActive:    transaction.IsActive(),
		CreatedAt:   transaction.CreatedAt(),
	}
}

// AllModels lists the models managed by AutoMigrate, parents first.
func AllModels() []interface{} {
	return []interface{}{
		&PersonModel{},
		&CategoryModel{},
		&TransactionModel{},
	}
}
