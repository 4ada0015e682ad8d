package person

import (
	"context"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
)

// ListPeopleOutput represents the output of listing people.
type ListPeopleOutput struct {
	People []PersonWithTotals
}

// ListPeopleUseCase lists every person with its totals.
type ListPeopleUseCase struct {
	personRepo      adapter.PersonRepository
	transactionRepo adapter.TransactionRepository
}

// NewListPeopleUseCase creates a new ListPeopleUseCase instance.
func NewListPeopleUseCase(
	personRepo adapter.PersonRepository,
	transactionRepo adapter.TransactionRepository,
) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		personRepo:      personRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the people.
func (uc *ListPeopleUseCase) Execute(ctx context.Context) (*ListPeopleOutput, error) {
	people, transactions, err := loadSnapshot(ctx, uc.personRepo, uc.transactionRepo)
	if err != nil {
		return nil, err
	}

	byPerson := aggregation.ByPerson(transactions)
	result := make([]PersonWithTotals, len(people))
	for i, p := range people {
		result[i] = PersonWithTotals{Person: p, Totals: aggregation.Lookup(byPerson, p.ID())}
	}

	return &ListPeopleOutput{People: result}, nil
}
