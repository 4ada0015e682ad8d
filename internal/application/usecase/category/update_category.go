package category

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// UpdateCategoryInput represents the input for a category update.
type UpdateCategoryInput struct {
	ID          int64
	Description string
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase replaces the description of an active category.
// The purpose is fixed at creation.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := findCategory(ctx, uc.categoryRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if err := category.UpdateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := ensureDescriptionAvailable(ctx, uc.categoryRepo, category.Description().Value(), category.ID()); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
