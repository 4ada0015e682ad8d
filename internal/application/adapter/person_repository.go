// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// PersonRepository defines the interface for person persistence operations.
type PersonRepository interface {
	// Create stores a new person and assigns its generated ID.
	Create(ctx context.Context, person *entity.Person) error

	// FindByID retrieves a person with its transaction ids.
	// Returns domainerror.ErrPersonNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// FindAll retrieves every person ordered by name.
	FindAll(ctx context.Context) ([]*entity.Person, error)

	// ExistsByName checks if another person already uses the name.
	// excludeID skips the person being updated; pass 0 on creation.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// Update saves the mutable fields of an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// Delete removes the person row and every transaction that references it.
	Delete(ctx context.Context, id int64) error
}
