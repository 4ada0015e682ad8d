package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// CancelTransactionInput represents the input for cancelling a transaction.
type CancelTransactionInput struct {
	ID int64
}

// CancelTransactionOutput represents the output of cancelling a transaction.
type CancelTransactionOutput struct {
	Transaction *entity.Transaction
}

// CancelTransactionUseCase moves a transaction to its terminal state.
// Cancelled transactions stay stored but no longer count in totals.
type CancelTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCancelTransactionUseCase creates a new CancelTransactionUseCase instance.
func NewCancelTransactionUseCase(transactionRepo adapter.TransactionRepository) *CancelTransactionUseCase {
	return &CancelTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute cancels the transaction.
func (uc *CancelTransactionUseCase) Execute(ctx context.Context, input CancelTransactionInput) (*CancelTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				fmt.Sprintf("transaction %d not found", input.ID),
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if err := tx.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.UpdateStatus(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to cancel transaction: %w", err)
	}

	slog.Info("transaction cancelled", "transaction_id", tx.ID())
	return &CancelTransactionOutput{Transaction: tx}, nil
}
