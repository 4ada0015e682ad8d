package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
)

// DeletePersonInput represents the input for person deletion.
type DeletePersonInput struct {
	ID int64
}

// DeletePersonUseCase deactivates a person and purges its row and transactions from storage.
type DeletePersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewDeletePersonUseCase creates a new DeletePersonUseCase instance.
func NewDeletePersonUseCase(personRepo adapter.PersonRepository) *DeletePersonUseCase {
	return &DeletePersonUseCase{
		personRepo: personRepo,
	}
}

// Execute performs the person deletion.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, input DeletePersonInput) error {
	person, err := findPerson(ctx, uc.personRepo, input.ID)
	if err != nil {
		return err
	}

	// Terminal state in the domain
	if err := person.Deactivate(); err != nil {
		return err
	}

	if err := uc.personRepo.Delete(ctx, person.ID()); err != nil {
		slog.Error("failed to delete person", "person_id", person.ID(), "error", err)
		return fmt.Errorf("failed to delete person: %w", err)
	}

	slog.Info("person deleted", "person_id", person.ID(), "transactions_removed", person.TransactionCount())
	return nil
}
