package event

import (
	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// TransactionCreatedName identifies TransactionCreated events.
const TransactionCreatedName = "transaction.created"

// TransactionCreated is recorded when a new transaction passes every creation rule.
type TransactionCreated struct {
	Base
	TransactionID int64
	PersonID      int64
	CategoryID    int64
	Amount        decimal.Decimal
	Type          valueobject.TransactionType
	Description   string
}

// NewTransactionCreated creates a TransactionCreated event.
func NewTransactionCreated(
	transactionID, personID, categoryID int64,
	amount decimal.Decimal,
	transactionType valueobject.TransactionType,
	description string,
) TransactionCreated {
	return TransactionCreated{
		Base:          NewBase(),
		TransactionID: transactionID,
		PersonID:      personID,
		CategoryID:    categoryID,
		Amount:        amount,
		Type:          transactionType,
		Description:   description,
	}
}

// Name implements Event.
func (TransactionCreated) Name() string {
	return TransactionCreatedName
}

func (e TransactionCreated) withAggregateID(id int64) Event {
	if e.TransactionID == 0 {
		e.TransactionID = id
	}
	return e
}
