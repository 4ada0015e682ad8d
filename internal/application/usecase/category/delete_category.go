package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID int64
}

// DeleteCategoryUseCase removes a category row. Deletion is denied while
// transactions still reference the category.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := findCategory(ctx, uc.categoryRepo, input.ID)
	if err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID()); err != nil {
		if errors.Is(err, domainerror.ErrCategoryInUse) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category has transactions and cannot be deleted; deactivate it instead",
				domainerror.ErrCategoryInUse,
			)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("category deleted", "category_id", category.ID())
	return nil
}
