// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create stores a new category and assigns its generated ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	// Returns domainerror.ErrCategoryNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindAll retrieves every category ordered by description.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByDescription checks case-insensitively if another category uses the description.
	ExistsByDescription(ctx context.Context, description string, excludeID int64) (bool, error)

	// Update saves the mutable fields of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Returns domainerror.ErrCategoryInUse while
	// any transaction still references it.
	Delete(ctx context.Context, id int64) error
}
