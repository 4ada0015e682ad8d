package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/rule"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// Transaction is an income or expense entry. After creation only Cancel changes it.
type Transaction struct {
	id              int64
	amount          valueobject.Money
	description     string
	transactionType valueobject.TransactionType
	categoryID      int64
	personID        int64
	createdAt       time.Time
	isActive        bool
}

// TransactionParams holds the inputs of NewTransaction. IsPersonMinor and
// CategorySupportsType are facts computed by the caller from current storage state.
type TransactionParams struct {
	ID                   int64
	Amount               decimal.Decimal
	Currency             string
	Description          string
	Type                 valueobject.TransactionType
	CategoryID           int64
	PersonID             int64
	IsPersonMinor        bool
	CategorySupportsType bool
}

// NewTransaction runs the ordered creation rules and builds an active transaction.
// A TransactionCreated event is returned only when params.ID is 0.
func NewTransaction(params TransactionParams) (*Transaction, []event.Event, error) {
	candidate := rule.TransactionCandidate{
		Amount:               params.Amount,
		Description:          params.Description,
		Type:                 params.Type,
		IsPersonMinor:        params.IsPersonMinor,
		CategorySupportsType: params.CategorySupportsType,
	}
	if err := rule.ValidateCreation(candidate); err != nil {
		return nil, nil, err
	}

	amount, err := newTransactionMoney(params.Amount, params.Currency)
	if err != nil {
		return nil, nil, err
	}

	tx := &Transaction{
		id:              params.ID,
		amount:          amount,
		description:     strings.TrimSpace(params.Description),
		transactionType: params.Type,
		categoryID:      params.CategoryID,
		personID:        params.PersonID,
		createdAt:       time.Now().UTC(),
		isActive:        true,
	}

	var events []event.Event
	if params.ID == 0 {
		events = append(events, event.NewTransactionCreated(
			tx.id,
			tx.personID,
			tx.categoryID,
			tx.amount.Amount(),
			tx.transactionType,
			tx.description,
		))
	}
	return tx, events, nil
}

// RestoreTransactionParams holds a stored transaction row.
type RestoreTransactionParams struct {
	ID          int64
	Amount      decimal.Decimal
	Currency    string
	Description string
	Type        valueobject.TransactionType
	CategoryID  int64
	PersonID    int64
	CreatedAt   time.Time
	IsActive    bool
}

// RestoreTransaction rebuilds a stored transaction. Only the rules on the
// transaction's own values are checked; the person and category facts were
// settled at creation.
func RestoreTransaction(params RestoreTransactionParams) (*Transaction, error) {
	candidate := rule.TransactionCandidate{
		Amount:      params.Amount,
		Description: params.Description,
		Type:        params.Type,
	}
	if err := rule.Evaluate(candidate, rule.ScalarChecks()); err != nil {
		return nil, err
	}

	amount, err := newTransactionMoney(params.Amount, params.Currency)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		id:              params.ID,
		amount:          amount,
		description:     strings.TrimSpace(params.Description),
		transactionType: params.Type,
		categoryID:      params.CategoryID,
		personID:        params.PersonID,
		createdAt:       params.CreatedAt,
		isActive:        params.IsActive,
	}, nil
}

// ID returns the storage id, 0 when not yet persisted.
func (t *Transaction) ID() int64 {
	return t.id
}

// Amount returns the transaction value.
func (t *Transaction) Amount() valueobject.Money {
	return t.amount
}

// Description returns the trimmed description.
func (t *Transaction) Description() string {
	return t.description
}

// Type returns Expense or Income.
func (t *Transaction) Type() valueobject.TransactionType {
	return t.transactionType
}

// CategoryID returns the referenced category id.
func (t *Transaction) CategoryID() int64 {
	return t.categoryID
}

// PersonID returns the referenced person id.
func (t *Transaction) PersonID() int64 {
	return t.personID
}

// CreatedAt returns the creation time in UTC.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// IsActive reports whether the transaction has not been cancelled.
func (t *Transaction) IsActive() bool {
	return t.isActive
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.transactionType == valueobject.TransactionTypeExpense
}

// IsIncome reports whether the transaction is an income.
func (t *Transaction) IsIncome() bool {
	return t.transactionType == valueobject.TransactionTypeIncome
}

// AssignID sets the storage id of a new transaction. It has no effect once an id is set.
func (t *Transaction) AssignID(id int64) {
	if t.id == 0 {
		t.id = id
	}
}

// Cancel moves the transaction to its terminal state.
func (t *Transaction) Cancel() error {
	if !t.isActive {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionAlreadyCancelled,
			"transaction already cancelled",
			domainerror.ErrTransactionAlreadyCancelled,
		)
	}
	t.isActive = false
	return nil
}

func newTransactionMoney(amount decimal.Decimal, currency string) (valueobject.Money, error) {
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	money, err := valueobject.NewMoney(amount, currency)
	if err != nil {
		return valueobject.Money{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"invalid transaction amount",
			err,
		)
	}
	return money, nil
}
