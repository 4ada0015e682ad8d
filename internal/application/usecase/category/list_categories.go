package category

import (
	"context"
	"fmt"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/aggregation"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase lists categories ordered by description.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}

// CategoryWithTotals pairs a category with totals of its active transactions.
type CategoryWithTotals struct {
	Category *entity.Category
	Totals   aggregation.Totals
}

// ListCategoriesWithTotalsOutput represents per-category totals and their grand total.
type ListCategoriesWithTotalsOutput struct {
	Categories []CategoryWithTotals
	Totals     aggregation.Totals
}

// ListCategoriesWithTotalsUseCase computes totals per category from a fresh snapshot.
type ListCategoriesWithTotalsUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesWithTotalsUseCase creates a new ListCategoriesWithTotalsUseCase instance.
func NewListCategoriesWithTotalsUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListCategoriesWithTotalsUseCase {
	return &ListCategoriesWithTotalsUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the per-category totals.
func (uc *ListCategoriesWithTotalsUseCase) Execute(ctx context.Context) (*ListCategoriesWithTotalsOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	byCategory := aggregation.ByCategory(transactions)
	rows := make([]CategoryWithTotals, len(categories))
	for i, c := range categories {
		rows[i] = CategoryWithTotals{Category: c, Totals: aggregation.Lookup(byCategory, c.ID())}
	}

	return &ListCategoriesWithTotalsOutput{
		Categories: rows,
		Totals:     aggregation.Global(transactions),
	}, nil
}
