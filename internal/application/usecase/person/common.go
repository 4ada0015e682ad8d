// Package person contains person-related use cases.
package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// PersonWithTotals pairs a person with totals computed from its active transactions.
type PersonWithTotals struct {
	Person *entity.Person
	Totals aggregation.Totals
}

// findPerson loads a person and converts a missing row into a coded error.
func findPerson(ctx context.Context, personRepo adapter.PersonRepository, id int64) (*entity.Person, error) {
	person, err := personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return nil, domainerror.NewPersonError(
				domainerror.ErrCodePersonNotFound,
				fmt.Sprintf("person %d not found", id),
				domainerror.ErrPersonNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return person, nil
}

// ensureNameAvailable rejects a name already used by another person.
func ensureNameAvailable(ctx context.Context, personRepo adapter.PersonRepository, name string, excludeID int64) error {
	exists, err := personRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check person name existence: %w", err)
	}
	if exists {
		return domainerror.NewPersonError(
			domainerror.ErrCodePersonNameExists,
			"a person with this name already exists",
			domainerror.ErrPersonNameExists,
		)
	}
	return nil
}
