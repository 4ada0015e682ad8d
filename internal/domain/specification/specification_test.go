package specification

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected bool
	}{
		{"0.01", true},
		{"4500", true},
		{"0", false},
		{"-0.01", false},
		{"-150.50", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := IsValidAmount(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Errorf("IsValidAmount(%s) = %v, want %v", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestHasValidDescription(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "regular", text: "Rent", expected: true},
		{name: "at limit", text: strings.Repeat("r", 400), expected: true},
		{name: "over limit", text: strings.Repeat("r", 401), expected: false},
		{name: "empty", text: "", expected: false},
		{name: "blank", text: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasValidDescription(tt.text); got != tt.expected {
				t.Errorf("HasValidDescription = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	for _, tt := range valueobject.TransactionTypes() {
		if !IsValidTransactionType(tt) {
			t.Errorf("expected %d to be valid", tt)
		}
	}
	if IsValidTransactionType(valueobject.TransactionType(0)) {
		t.Error("expected zero value to be invalid")
	}
	if IsValidTransactionType(valueobject.TransactionType(9)) {
		t.Error("expected out of range value to be invalid")
	}
}

func TestCanMinorCreateIncome(t *testing.T) {
	if CanMinorCreateIncome(true) {
		t.Error("minor must not create income")
	}
	if !CanMinorCreateIncome(false) {
		t.Error("adult must create income")
	}
}

func TestCanBeUsedWithTransactionType(t *testing.T) {
	expense := valueobject.TransactionTypeExpense
	income := valueobject.TransactionTypeIncome

	tests := []struct {
		name     string
		purpose  valueobject.CategoryPurpose
		txType   valueobject.TransactionType
		expected bool
	}{
		{name: "both with expense", purpose: valueobject.CategoryPurposeBoth, txType: expense, expected: true},
		{name: "both with income", purpose: valueobject.CategoryPurposeBoth, txType: income, expected: true},
		{name: "expense with expense", purpose: valueobject.CategoryPurposeExpense, txType: expense, expected: true},
		{name: "expense with income", purpose: valueobject.CategoryPurposeExpense, txType: income, expected: false},
		{name: "income with income", purpose: valueobject.CategoryPurposeIncome, txType: income, expected: true},
		{name: "income with expense", purpose: valueobject.CategoryPurposeIncome, txType: expense, expected: false},
		{name: "unknown purpose", purpose: valueobject.CategoryPurpose(0), txType: expense, expected: false},
		{name: "both with unknown type", purpose: valueobject.CategoryPurposeBoth, txType: valueobject.TransactionType(0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBeUsedWithTransactionType(tt.purpose, tt.txType); got != tt.expected {
				t.Errorf("CanBeUsedWithTransactionType = %v, want %v", got, tt.expected)
			}
		})
	}
}
