package person

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
)

// UpdatePersonInput represents the input for a person update.
type UpdatePersonInput struct {
	ID   int64
	Name string
	Age  int
}

// UpdatePersonOutput represents the output of a person update.
type UpdatePersonOutput struct {
	Person PersonWithTotals
}

// UpdatePersonUseCase replaces the name and age of an active person.
type UpdatePersonUseCase struct {
	personRepo      adapter.PersonRepository
	transactionRepo adapter.TransactionRepository
}

// NewUpdatePersonUseCase creates a new UpdatePersonUseCase instance.
func NewUpdatePersonUseCase(
	personRepo adapter.PersonRepository,
	transactionRepo adapter.TransactionRepository,
) *UpdatePersonUseCase {
	return &UpdatePersonUseCase{
		personRepo:      personRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the person update.
func (uc *UpdatePersonUseCase) Execute(ctx context.Context, input UpdatePersonInput) (*UpdatePersonOutput, error) {
	person, err := findPerson(ctx, uc.personRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if err := person.UpdateName(input.Name); err != nil {
		return nil, err
	}
	if err := person.UpdateAge(input.Age); err != nil {
		return nil, err
	}

	if err := ensureNameAvailable(ctx, uc.personRepo, person.Name().Value(), person.ID()); err != nil {
		return nil, err
	}

	if err := uc.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByPerson(ctx, person.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load person transactions: %w", err)
	}

	return &UpdatePersonOutput{
		Person: PersonWithTotals{Person: person, Totals: aggregation.Compute(transactions)},
	}, nil
}
