// Package mocks provides testify mocks of the application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// PersonRepository is a mock of adapter.PersonRepository.
type PersonRepository struct {
	mock.Mock
}

func (m *PersonRepository) Create(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *PersonRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

func (m *PersonRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Person), args.Error(1)
}

func (m *PersonRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *PersonRepository) Update(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *PersonRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CategoryRepository is a mock of adapter.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *CategoryRepository) ExistsByDescription(ctx context.Context, description string, excludeID int64) (bool, error) {
	args := m.Called(ctx, description, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TransactionRepository is a mock of adapter.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *TransactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindByPerson(ctx context.Context, personID int64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *TransactionRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *TransactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}
