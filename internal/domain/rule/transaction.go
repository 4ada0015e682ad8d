// Package rule evaluates the ordered transaction rules shared by the domain
// services and the Transaction aggregate.
package rule

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/specification"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// TransactionCandidate carries the raw inputs and caller-computed facts of a transaction.
type TransactionCandidate struct {
	Amount               decimal.Decimal
	Description          string
	Type                 valueobject.TransactionType
	IsPersonMinor        bool
	CategorySupportsType bool
}

// Check is a single rule. It returns nil when the candidate satisfies it.
type Check func(c TransactionCandidate) error

// Amount requires a strictly positive amount.
func Amount(c TransactionCandidate) error {
	if !specification.IsValidAmount(c.Amount) {
		return violation(domainerror.ErrCodeInvalidAmount, domainerror.MsgAmountNotPositive)
	}
	return nil
}

// AmountPrecision rejects amounts below cent precision, which storage would round.
func AmountPrecision(c TransactionCandidate) error {
	if !specification.HasCentPrecision(c.Amount) {
		return violation(domainerror.ErrCodeAmountPrecision, domainerror.MsgAmountPrecision)
	}
	return nil
}

// Description requires a non-blank description within the length limit.
func Description(c TransactionCandidate) error {
	if !specification.HasValidDescription(c.Description) {
		return violation(domainerror.ErrCodeInvalidDescription, domainerror.MsgInvalidDescription)
	}
	return nil
}

// Type requires Expense or Income.
func Type(c TransactionCandidate) error {
	if !specification.IsValidTransactionType(c.Type) {
		return violation(domainerror.ErrCodeInvalidTransactionType, domainerror.MsgInvalidTransactionType)
	}
	return nil
}

// MinorIncome rejects income for minors. There is no override.
func MinorIncome(c TransactionCandidate) error {
	if c.Type == valueobject.TransactionTypeIncome && !specification.CanMinorCreateIncome(c.IsPersonMinor) {
		return violation(domainerror.ErrCodeMinorIncome, domainerror.MsgMinorsCannotRegister)
	}
	return nil
}

// CategoryCompatibility requires the category to accept the transaction type.
func CategoryCompatibility(c TransactionCandidate) error {
	if !c.CategorySupportsType {
		return violation(domainerror.ErrCodeCategoryTypeIncompatible, domainerror.MsgCategoryTypeIncompatible)
	}
	return nil
}

// CreationChecks is the full ordered gate run by the Transaction factory.
func CreationChecks() []Check {
	return []Check{Amount, AmountPrecision, Description, Type, MinorIncome, CategoryCompatibility}
}

// FactChecks is the validation service gate. It skips the description and
// checks category compatibility before the minor rule.
func FactChecks() []Check {
	return []Check{Amount, AmountPrecision, Type, CategoryCompatibility, MinorIncome}
}

// ScalarChecks covers the rules that depend only on the transaction's own values.
func ScalarChecks() []Check {
	return []Check{Amount, AmountPrecision, Description, Type}
}

// BusinessChecks covers only the rules that depend on caller-supplied facts.
func BusinessChecks() []Check {
	return []Check{MinorIncome, CategoryCompatibility}
}

// Evaluate runs checks in order and returns the first violation.
func Evaluate(c TransactionCandidate, checks []Check) error {
	for _, check := range checks {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCreation runs CreationChecks.
func ValidateCreation(c TransactionCandidate) error {
	return Evaluate(c, CreationChecks())
}

func violation(code domainerror.TransactionErrorCode, message string) error {
	return domainerror.NewTransactionError(code, message, domainerror.ErrInvalidTransaction)
}
