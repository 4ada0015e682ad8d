package transaction

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// TransactionDetail is a transaction with the display names of its references.
type TransactionDetail struct {
	Transaction         *entity.Transaction
	PersonName          string
	CategoryDescription string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []TransactionDetail
}

// ListTransactionsUseCase lists transactions newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	personRepo      adapter.PersonRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	personRepo adapter.PersonRepository,
	categoryRepo adapter.CategoryRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		personRepo:      personRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute lists the transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	people, err := uc.personRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	personNames := make(map[int64]string, len(people))
	for _, p := range people {
		personNames[p.ID()] = p.Name().Value()
	}
	categoryDescriptions := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryDescriptions[c.ID()] = c.Description().Value()
	}

	details := make([]TransactionDetail, len(transactions))
	for i, tx := range transactions {
		details[i] = TransactionDetail{
			Transaction:         tx,
			PersonName:          personNames[tx.PersonID()],
			CategoryDescription: categoryDescriptions[tx.CategoryID()],
		}
	}

	return &ListTransactionsOutput{Transactions: details}, nil
}
