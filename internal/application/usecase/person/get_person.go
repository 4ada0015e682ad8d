package person

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
)

// GetPersonInput represents the input for retrieving a person.
type GetPersonInput struct {
	ID int64
}

// GetPersonOutput represents the output of retrieving a person.
type GetPersonOutput struct {
	Person PersonWithTotals
}

// GetPersonUseCase retrieves a person with freshly computed totals.
type GetPersonUseCase struct {
	personRepo      adapter.PersonRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetPersonUseCase creates a new GetPersonUseCase instance.
func NewGetPersonUseCase(
	personRepo adapter.PersonRepository,
	transactionRepo adapter.TransactionRepository,
) *GetPersonUseCase {
	return &GetPersonUseCase{
		personRepo:      personRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the person.
func (uc *GetPersonUseCase) Execute(ctx context.Context, input GetPersonInput) (*GetPersonOutput, error) {
	person, err := findPerson(ctx, uc.personRepo, input.ID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByPerson(ctx, person.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load person transactions: %w", err)
	}

	return &GetPersonOutput{
		Person: PersonWithTotals{Person: person, Totals: aggregation.Compute(transactions)},
	}, nil
}
