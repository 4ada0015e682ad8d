// Package specification holds side-effect-free predicates for business rules.
package specification

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// IsValidAmount reports whether amount is strictly positive.
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// MaxAmountDecimalPlaces is the number of fractional digits an amount may carry.
const MaxAmountDecimalPlaces = 2

// HasCentPrecision reports whether amount has no digits below the cent.
func HasCentPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MaxAmountDecimalPlaces))
}

// HasValidDescription reports whether text is non-blank and within MaxDescriptionLength.
func HasValidDescription(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= valueobject.MaxDescriptionLength
}

// IsValidTransactionType reports whether t is Expense or Income.
func IsValidTransactionType(t valueobject.TransactionType) bool {
	return t.Valid()
}

// CanMinorCreateIncome reports whether a person may register income.
// Minors never can.
func CanMinorCreateIncome(isMinor bool) bool {
	return !isMinor
}
