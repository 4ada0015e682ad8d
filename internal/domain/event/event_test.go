package event

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func TestWithAggregateID(t *testing.T) {
	category := NewCategoryCreated(0, "Food", valueobject.CategoryPurposeExpense)
	transaction := NewTransactionCreated(0, 1, 2, decimal.NewFromInt(5), valueobject.TransactionTypeExpense, "Bread")
	known := NewTransactionCreated(7, 1, 2, decimal.NewFromInt(5), valueobject.TransactionTypeExpense, "Milk")

	stamped := WithAggregateID([]Event{category, transaction, known}, 42)

	if len(stamped) != 3 {
		t.Fatalf("len = %d, want 3", len(stamped))
	}
	if got := stamped[0].(CategoryCreated).CategoryID; got != 42 {
		t.Errorf("category id = %d, want 42", got)
	}
	if got := stamped[1].(TransactionCreated).TransactionID; got != 42 {
		t.Errorf("transaction id = %d, want 42", got)
	}
	if got := stamped[2].(TransactionCreated).TransactionID; got != 7 {
		t.Errorf("existing id = %d, want 7", got)
	}
	if stamped[1].EventID() != transaction.EventID() {
		t.Error("stamping must keep the event id")
	}
	if transaction.TransactionID != 0 {
		t.Error("original event must not be modified")
	}
}
