package person

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// GetSummaryOutput holds per-person totals and the household-wide totals.
type GetSummaryOutput struct {
	People []PersonWithTotals
	Totals aggregation.Totals
}

// GetSummaryUseCase builds the household summary from a fresh snapshot.
type GetSummaryUseCase struct {
	personRepo      adapter.PersonRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	personRepo adapter.PersonRepository,
	transactionRepo adapter.TransactionRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		personRepo:      personRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	people, transactions, err := loadSnapshot(ctx, uc.personRepo, uc.transactionRepo)
	if err != nil {
		return nil, err
	}

	byPerson := aggregation.ByPerson(transactions)
	rows := make([]PersonWithTotals, len(people))
	for i, p := range people {
		rows[i] = PersonWithTotals{Person: p, Totals: aggregation.Lookup(byPerson, p.ID())}
	}

	return &GetSummaryOutput{
		People: rows,
		Totals: aggregation.Global(transactions),
	}, nil
}

func loadSnapshot(
	ctx context.Context,
	personRepo adapter.PersonRepository,
	transactionRepo adapter.TransactionRepository,
) ([]*entity.Person, []*entity.Transaction, error) {
	people, err := personRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list people: %w", err)
	}
	transactions, err := transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return people, transactions, nil
}
