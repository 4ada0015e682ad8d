package person

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/household-expenses/backend/internal/application/adapter/mocks"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func storedPerson(t *testing.T, id int64, name string, age int) *entity.Person {
	t.Helper()
	p, err := entity.RestorePerson(id, name, age, time.Now().UTC(), true, nil)
	require.NoError(t, err)
	return p
}

func storedTransaction(t *testing.T, id, personID int64, amount string, txType valueobject.TransactionType) *entity.Transaction {
	t.Helper()
	tx, err := entity.RestoreTransaction(entity.RestoreTransactionParams{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Currency:    valueobject.DefaultCurrency,
		Description: "entry",
		Type:        txType,
		CategoryID:  1,
		PersonID:    personID,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	})
	require.NoError(t, err)
	return tx
}

func TestCreatePersonUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates person and assigns id", func(t *testing.T) {
		repo := new(mocks.PersonRepository)
		repo.On("ExistsByName", ctx, "Ana", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*entity.Person")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Person).AssignID(1)
			}).
			Return(nil)

		out, err := NewCreatePersonUseCase(repo).Execute(ctx, CreatePersonInput{Name: " Ana ", Age: 30})

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Person.Person.ID())
		assert.Equal(t, "Ana", out.Person.Person.Name().Value())
		assert.True(t, out.Person.Totals.Balance.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid age before touching storage", func(t *testing.T) {
		repo := new(mocks.PersonRepository)

		_, err := NewCreatePersonUseCase(repo).Execute(ctx, CreatePersonInput{Name: "Ana", Age: 200})

		var personErr *domainerror.PersonError
		require.ErrorAs(t, err, &personErr)
		assert.Equal(t, domainerror.ErrCodeInvalidPersonAge, personErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		repo := new(mocks.PersonRepository)
		repo.On("ExistsByName", ctx, "Ana", int64(0)).Return(true, nil)

		_, err := NewCreatePersonUseCase(repo).Execute(ctx, CreatePersonInput{Name: "Ana", Age: 30})

		assert.ErrorIs(t, err, domainerror.ErrPersonNameExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdatePersonUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and age", func(t *testing.T) {
		personRepo := new(mocks.PersonRepository)
		txRepo := new(mocks.TransactionRepository)
		personRepo.On("FindByID", ctx, int64(2)).Return(storedPerson(t, 2, "Bia", 15), nil)
		personRepo.On("ExistsByName", ctx, "Beatriz", int64(2)).Return(false, nil)
		personRepo.On("Update", ctx, mock.AnythingOfType("*entity.Person")).Return(nil)
		txRepo.On("FindByPerson", ctx, int64(2)).Return([]*entity.Transaction{}, nil)

		out, err := NewUpdatePersonUseCase(personRepo, txRepo).Execute(ctx, UpdatePersonInput{ID: 2, Name: "Beatriz", Age: 19})

		require.NoError(t, err)
		assert.Equal(t, "Beatriz", out.Person.Person.Name().Value())
		assert.False(t, out.Person.Person.IsMinor())
		personRepo.AssertExpectations(t)
	})

	t.Run("missing person", func(t *testing.T) {
		personRepo := new(mocks.PersonRepository)
		personRepo.On("FindByID", ctx, int64(9)).Return(nil, domainerror.ErrPersonNotFound)

		_, err := NewUpdatePersonUseCase(personRepo, new(mocks.TransactionRepository)).
			Execute(ctx, UpdatePersonInput{ID: 9, Name: "X", Age: 1})

		var personErr *domainerror.PersonError
		require.ErrorAs(t, err, &personErr)
		assert.Equal(t, domainerror.ErrCodePersonNotFound, personErr.Code)
	})
}

func TestDeletePersonUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates then deletes", func(t *testing.T) {
		repo := new(mocks.PersonRepository)
		repo.On("FindByID", ctx, int64(3)).Return(storedPerson(t, 3, "Caio", 40), nil)
		repo.On("Delete", ctx, int64(3)).Return(nil)

		err := NewDeletePersonUseCase(repo).Execute(ctx, DeletePersonInput{ID: 3})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := new(mocks.PersonRepository)
		storageErr := errors.New("disk full")
		repo.On("FindByID", ctx, int64(3)).Return(storedPerson(t, 3, "Caio", 40), nil)
		repo.On("Delete", ctx, int64(3)).Return(storageErr)

		err := NewDeletePersonUseCase(repo).Execute(ctx, DeletePersonInput{ID: 3})

		assert.ErrorIs(t, err, storageErr)
	})
}

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	personRepo := new(mocks.PersonRepository)
	txRepo := new(mocks.TransactionRepository)

	personRepo.On("FindAll", ctx).Return([]*entity.Person{
		storedPerson(t, 1, "Ana", 30),
		storedPerson(t, 2, "Bia", 15),
	}, nil)
	txRepo.On("FindAll", ctx).Return([]*entity.Transaction{
		storedTransaction(t, 1, 1, "4500", valueobject.TransactionTypeIncome),
		storedTransaction(t, 2, 1, "150.50", valueobject.TransactionTypeExpense),
		storedTransaction(t, 3, 1, "35.00", valueobject.TransactionTypeExpense),
	}, nil)

	out, err := NewGetSummaryUseCase(personRepo, txRepo).Execute(ctx)

	require.NoError(t, err)
	require.Len(t, out.People, 2)
	assert.True(t, out.People[0].Totals.Balance.Equal(decimal.RequireFromString("4314.50")))
	assert.True(t, out.People[1].Totals.Balance.IsZero())
	assert.True(t, out.Totals.TotalExpense.Equal(decimal.RequireFromString("185.50")))
}

func TestListPeopleUseCase(t *testing.T) {
	ctx := context.Background()
	personRepo := new(mocks.PersonRepository)
	txRepo := new(mocks.TransactionRepository)
	personRepo.On("FindAll", ctx).Return(nil, errors.New("connection refused"))

	_, err := NewListPeopleUseCase(personRepo, txRepo).Execute(ctx)

	assert.ErrorContains(t, err, "failed to list people")
	txRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}
