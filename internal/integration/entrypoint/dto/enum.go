package dto

import (
	"strings"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// Wire names of the closed enums. Conversion happens only in this package.
const (
	TransactionTypeExpense = "expense"
	TransactionTypeIncome  = "income"

	CategoryPurposeExpense = "expense"
	CategoryPurposeIncome  = "income"
	CategoryPurposeBoth    = "both"
)

// ParseTransactionType maps a wire name to a TransactionType.
// Unknown names yield the invalid zero value, which the domain rejects.
func ParseTransactionType(s string) valueobject.TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TransactionTypeExpense:
		return valueobject.TransactionTypeExpense
	case TransactionTypeIncome:
		return valueobject.TransactionTypeIncome
	default:
		return 0
	}
}

// FormatTransactionType returns the wire name of t.
func FormatTransactionType(t valueobject.TransactionType) string {
	switch t {
	case valueobject.TransactionTypeExpense:
		return TransactionTypeExpense
	case valueobject.TransactionTypeIncome:
		return TransactionTypeIncome
	default:
		return ""
	}
}

// ParseCategoryPurpose maps a wire name to a CategoryPurpose.
// Unknown names yield the invalid zero value.
func ParseCategoryPurpose(s string) valueobject.CategoryPurpose {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case CategoryPurposeExpense:
		return valueobject.CategoryPurposeExpense
	case CategoryPurposeIncome:
		return valueobject.CategoryPurposeIncome
	case CategoryPurposeBoth:
		return valueobject.CategoryPurposeBoth
	default:
		return 0
	}
}

// FormatCategoryPurpose returns the wire name of p.
func FormatCategoryPurpose(p valueobject.CategoryPurpose) string {
	switch p {
	case valueobject.CategoryPurposeExpense:
		return CategoryPurposeExpense
	case valueobject.CategoryPurposeIncome:
		return CategoryPurposeIncome
	case valueobject.CategoryPurposeBoth:
		return CategoryPurposeBoth
	default:
		return ""
	}
}
