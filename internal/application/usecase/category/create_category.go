package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/service"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Description string
	Purpose     valueobject.CategoryPurpose
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo      adapter.CategoryRepository
	validationService *service.CategoryValidationService
	publisher         adapter.EventPublisher
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	validationService *service.CategoryValidationService,
	publisher adapter.EventPublisher,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo:      categoryRepo,
		validationService: validationService,
		publisher:         publisher,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := uc.validationService.ValidateCategoryCreation(input.Description, input.Purpose); err != nil {
		return nil, err
	}

	category, events, err := entity.NewCategory(input.Description, input.Purpose, 0)
	if err != nil {
		return nil, err
	}

	// Check if the description is already taken (case-insensitive)
	if err := ensureDescriptionAvailable(ctx, uc.categoryRepo, category.Description().Value(), 0); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		slog.Error("failed to persist category", "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.WithAggregateID(events, category.ID())...); err != nil {
		slog.Warn("failed to publish category events", "category_id", category.ID(), "error", err)
	}

	slog.Info("category created", "category_id", category.ID(), "purpose", int(category.Purpose()))

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
