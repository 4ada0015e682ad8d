// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/service"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Currency    string // Optional, defaults to the configured currency
	Description string
	Type        valueobject.TransactionType
	CategoryID  int64
	PersonID    int64
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction TransactionDetail
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo       adapter.TransactionRepository
	personRepo            adapter.PersonRepository
	categoryRepo          adapter.CategoryRepository
	categoryValidation    *service.CategoryValidationService
	transactionValidation *service.TransactionValidationService
	publisher             adapter.EventPublisher
	defaultCurrency       string
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	personRepo adapter.PersonRepository,
	categoryRepo adapter.CategoryRepository,
	categoryValidation *service.CategoryValidationService,
	transactionValidation *service.TransactionValidationService,
	publisher adapter.EventPublisher,
	defaultCurrency string,
) *CreateTransactionUseCase {
	if defaultCurrency == "" {
		defaultCurrency = valueobject.DefaultCurrency
	}
	return &CreateTransactionUseCase{
		transactionRepo:       transactionRepo,
		personRepo:            personRepo,
		categoryRepo:          categoryRepo,
		categoryValidation:    categoryValidation,
		transactionValidation: transactionValidation,
		publisher:             publisher,
		defaultCurrency:       defaultCurrency,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Load the referenced aggregates
	person, err := uc.findPerson(ctx, input.PersonID)
	if err != nil {
		return nil, err
	}
	category, err := uc.findCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if !person.IsActive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInactivePerson,
			"person is inactive",
			domainerror.ErrInvalidTransaction,
		)
	}
	if !category.IsActive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInactiveCategory,
			"category is inactive",
			domainerror.ErrInvalidTransaction,
		)
	}

	// Compute the facts the rule gate needs
	isPersonMinor := person.IsMinor()
	categorySupportsType := uc.categoryValidation.SupportsTransactionType(category.Purpose(), input.Type)

	if err := uc.transactionValidation.ValidateTransactionCreation(
		input.Amount,
		input.Type,
		category.ID(),
		person.ID(),
		isPersonMinor,
		categorySupportsType,
	); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	tx, events, err := entity.NewTransaction(entity.TransactionParams{
		Amount:               input.Amount,
		Currency:             currency,
		Description:          input.Description,
		Type:                 input.Type,
		CategoryID:           category.ID(),
		PersonID:             person.ID(),
		IsPersonMinor:        isPersonMinor,
		CategorySupportsType: categorySupportsType,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		slog.Error("failed to persist transaction", "person_id", person.ID(), "error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.WithAggregateID(events, tx.ID())...); err != nil {
		slog.Warn("failed to publish transaction events", "transaction_id", tx.ID(), "error", err)
	}

	slog.Info("transaction created",
		"transaction_id", tx.ID(),
		"person_id", person.ID(),
		"category_id", category.ID(),
		"type", int(tx.Type()),
	)

	return &CreateTransactionOutput{
		Transaction: TransactionDetail{
			Transaction:         tx,
			PersonName:          person.Name().Value(),
			CategoryDescription: category.Description().Value(),
		},
	}, nil
}

func (uc *CreateTransactionUseCase) findPerson(ctx context.Context, id int64) (*entity.Person, error) {
	person, err := uc.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnPersonNotFound,
				fmt.Sprintf("person %d not found", id),
				domainerror.ErrPersonNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return person, nil
}

func (uc *CreateTransactionUseCase) findCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %d not found", id),
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}
