package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// DeactivateCategoryInput represents the input for category deactivation.
type DeactivateCategoryInput struct {
	ID int64
}

// DeactivateCategoryOutput represents the output of category deactivation.
type DeactivateCategoryOutput struct {
	Category *entity.Category
}

// DeactivateCategoryUseCase moves a category to its terminal state.
// Existing transactions keep referencing it.
type DeactivateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeactivateCategoryUseCase creates a new DeactivateCategoryUseCase instance.
func NewDeactivateCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeactivateCategoryUseCase {
	return &DeactivateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the deactivation.
func (uc *DeactivateCategoryUseCase) Execute(ctx context.Context, input DeactivateCategoryInput) (*DeactivateCategoryOutput, error) {
	category, err := findCategory(ctx, uc.categoryRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if err := category.Deactivate(); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to deactivate category: %w", err)
	}

	slog.Info("category deactivated", "category_id", category.ID())
	return &DeactivateCategoryOutput{Category: category}, nil
}
