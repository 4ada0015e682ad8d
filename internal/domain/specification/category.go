package specification

import "github.com/household-expenses/backend/internal/domain/valueobject"

// CanBeUsedWithTransactionType reports whether a category purpose accepts a transaction type.
func CanBeUsedWithTransactionType(purpose valueobject.CategoryPurpose, t valueobject.TransactionType) bool {
	switch purpose {
	case valueobject.CategoryPurposeBoth:
		return t.Valid()
	case valueobject.CategoryPurposeExpense:
		return t == valueobject.TransactionTypeExpense
	case valueobject.CategoryPurposeIncome:
		return t == valueobject.TransactionTypeIncome
	default:
		return false
	}
}

// IsValidPurpose reports whether purpose is a member of the enum.
func IsValidPurpose(purpose valueobject.CategoryPurpose) bool {
	return purpose.Valid()
}
