// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// findCategory loads a category and converts a missing row into a coded error.
func findCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, id int64) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %d not found", id),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// ensureDescriptionAvailable rejects a description already used by another category.
func ensureDescriptionAvailable(ctx context.Context, categoryRepo adapter.CategoryRepository, description string, excludeID int64) error {
	exists, err := categoryRepo.ExistsByDescription(ctx, description, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check category description existence: %w", err)
	}
	if exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryDescriptionExists,
			"a category with this description already exists",
			domainerror.ErrCategoryDescriptionExists,
		)
	}
	return nil
}
