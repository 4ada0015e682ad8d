package category

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/household-expenses/backend/internal/application/adapter/mocks"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/service"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func storedCategory(t *testing.T, id int64, description string, purpose valueobject.CategoryPurpose, active bool) *entity.Category {
	t.Helper()
	c, err := entity.RestoreCategory(id, description, purpose, time.Now().UTC(), active)
	require.NoError(t, err)
	return c
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and publishes event", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		publisher := new(mocks.EventPublisher)
		repo.On("ExistsByDescription", ctx, "Salary", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Category).AssignID(4)
			}).
			Return(nil)
		publisher.On("Publish", ctx, mock.MatchedBy(func(events []event.Event) bool {
			if len(events) != 1 {
				return false
			}
			created, ok := events[0].(event.CategoryCreated)
			return ok && created.CategoryID == 4 && created.Description == "Salary"
		})).Return(nil).Once()

		uc := NewCreateCategoryUseCase(repo, service.NewCategoryValidationService(), publisher)
		out, err := uc.Execute(ctx, CreateCategoryInput{Description: "Salary", Purpose: valueobject.CategoryPurposeIncome})

		require.NoError(t, err)
		assert.Equal(t, int64(4), out.Category.ID())
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("duplicate description", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		publisher := new(mocks.EventPublisher)
		repo.On("ExistsByDescription", ctx, "salary", int64(0)).Return(true, nil)

		uc := NewCreateCategoryUseCase(repo, service.NewCategoryValidationService(), publisher)
		_, err := uc.Execute(ctx, CreateCategoryInput{Description: "salary", Purpose: valueobject.CategoryPurposeBoth})

		var catErr *domainerror.CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domainerror.ErrCodeCategoryDescriptionExists, catErr.Code)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("invalid purpose", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		uc := NewCreateCategoryUseCase(repo, service.NewCategoryValidationService(), new(mocks.EventPublisher))

		_, err := uc.Execute(ctx, CreateCategoryInput{Description: "Misc", Purpose: valueobject.CategoryPurpose(7)})

		assert.ErrorIs(t, err, domainerror.ErrInvalidCategory)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDeactivateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		repo.On("FindByID", ctx, int64(1)).Return(storedCategory(t, 1, "Food", valueobject.CategoryPurposeExpense, true), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

		out, err := NewDeactivateCategoryUseCase(repo).Execute(ctx, DeactivateCategoryInput{ID: 1})

		require.NoError(t, err)
		assert.False(t, out.Category.IsActive())
	})

	t.Run("already inactive", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		repo.On("FindByID", ctx, int64(1)).Return(storedCategory(t, 1, "Food", valueobject.CategoryPurposeExpense, false), nil)

		_, err := NewDeactivateCategoryUseCase(repo).Execute(ctx, DeactivateCategoryInput{ID: 1})

		assert.ErrorIs(t, err, domainerror.ErrCategoryAlreadyInactive)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("in use", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		repo.On("FindByID", ctx, int64(2)).Return(storedCategory(t, 2, "Rent", valueobject.CategoryPurposeExpense, true), nil)
		repo.On("Delete", ctx, int64(2)).Return(domainerror.ErrCategoryInUse)

		err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{ID: 2})

		var catErr *domainerror.CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domainerror.ErrCodeCategoryInUse, catErr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		repo.On("FindByID", ctx, int64(5)).Return(nil, domainerror.ErrCategoryNotFound)

		err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{ID: 5})

		var catErr *domainerror.CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domainerror.ErrCodeCategoryNotFound, catErr.Code)
	})
}

func TestListCategoriesWithTotalsUseCase(t *testing.T) {
	ctx := context.Background()
	categoryRepo := new(mocks.CategoryRepository)
	txRepo := new(mocks.TransactionRepository)

	salary := storedCategory(t, 1, "Salary", valueobject.CategoryPurposeIncome, true)
	food := storedCategory(t, 2, "Food", valueobject.CategoryPurposeExpense, true)
	categoryRepo.On("FindAll", ctx).Return([]*entity.Category{food, salary}, nil)

	income, err := entity.RestoreTransaction(entity.RestoreTransactionParams{
		ID: 1, Amount: decimal.NewFromInt(4500), Currency: "BRL", Description: "Pay",
		Type: valueobject.TransactionTypeIncome, CategoryID: 1, PersonID: 1, IsActive: true,
	})
	require.NoError(t, err)
	cancelled, err := entity.RestoreTransaction(entity.RestoreTransactionParams{
		ID: 2, Amount: decimal.NewFromInt(70), Currency: "BRL", Description: "Lunch",
		Type: valueobject.TransactionTypeExpense, CategoryID: 2, PersonID: 1, IsActive: false,
	})
	require.NoError(t, err)
	txRepo.On("FindAll", ctx).Return([]*entity.Transaction{income, cancelled}, nil)

	out, err := NewListCategoriesWithTotalsUseCase(categoryRepo, txRepo).Execute(ctx)

	require.NoError(t, err)
	require.Len(t, out.Categories, 2)
	assert.True(t, out.Categories[0].Totals.TotalExpense.IsZero())
	assert.True(t, out.Categories[1].Totals.TotalIncome.Equal(decimal.NewFromInt(4500)))
	assert.True(t, out.Totals.Balance.Equal(decimal.NewFromInt(4500)))
}
