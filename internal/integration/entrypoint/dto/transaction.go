package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/application/usecase/transaction"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or string.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Description string          `json:"description" binding:"required,max=400"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	CategoryID  int64           `json:"category_id" binding:"required,gt=0"`
	PersonID    int64           `json:"person_id" binding:"required,gt=0"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                  int64     `json:"id"`
	Amount              string    `json:"amount"`
	Currency            string    `json:"currency"`
	Description         string    `json:"description"`
	Type                string    `json:"type"`
	CategoryID          int64     `json:"category_id"`
	CategoryDescription string    `json:"category_description,omitempty"`
	PersonID            int64     `json:"person_id"`
	PersonName          string    `json:"person_name,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction to a response.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID(),
		Amount:      tx.Amount().Amount().StringFixed(2),
		Currency:    tx.Amount().Currency(),
		Description: tx.Description(),
		Type:        FormatTransactionType(tx.Type()),
		CategoryID:  tx.CategoryID(),
		PersonID:    tx.PersonID(),
		IsActive:    tx.IsActive(),
		CreatedAt:   tx.CreatedAt(),
	}
}

// ToTransactionDetailResponse converts a transaction with reference names to a response.
func ToTransactionDetailResponse(detail transaction.TransactionDetail) TransactionResponse {
	response := ToTransactionResponse(detail.Transaction)
	response.PersonName = detail.PersonName
	response.CategoryDescription = detail.CategoryDescription
	return response
}

// ToTransactionListResponse converts transaction details to a list response.
func ToTransactionListResponse(details []transaction.TransactionDetail) TransactionListResponse {
	out := make([]TransactionResponse, len(details))
	for i, d := range details {
		out[i] = ToTransactionDetailResponse(d)
	}
	return TransactionListResponse{Transactions: out}
}
