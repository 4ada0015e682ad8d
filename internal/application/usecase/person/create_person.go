package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// CreatePersonInput represents the input for person creation.
type CreatePersonInput struct {
	Name string
	Age  int
}

// CreatePersonOutput represents the output of person creation.
type CreatePersonOutput struct {
	Person PersonWithTotals
}

// CreatePersonUseCase handles person creation logic.
type CreatePersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewCreatePersonUseCase creates a new CreatePersonUseCase instance.
func NewCreatePersonUseCase(personRepo adapter.PersonRepository) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the person creation.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, input CreatePersonInput) (*CreatePersonOutput, error) {
	// Build the aggregate first so invalid input never reaches storage
	person, err := entity.NewPerson(input.Name, input.Age, 0)
	if err != nil {
		return nil, err
	}

	if err := ensureNameAvailable(ctx, uc.personRepo, person.Name().Value(), 0); err != nil {
		return nil, err
	}

	if err := uc.personRepo.Create(ctx, person); err != nil {
		slog.Error("failed to persist person", "error", err)
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	slog.Info("person created", "person_id", person.ID(), "is_minor", person.IsMinor())

	return &CreatePersonOutput{
		Person: PersonWithTotals{Person: person, Totals: aggregation.Zero()},
	}, nil
}
