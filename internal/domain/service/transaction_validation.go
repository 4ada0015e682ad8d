package service

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/rule"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// TransactionValidationService pre-checks a transaction with the same rule gate
// the Transaction factory uses.
type TransactionValidationService struct{}

// NewTransactionValidationService creates a new TransactionValidationService.
func NewTransactionValidationService() *TransactionValidationService {
	return &TransactionValidationService{}
}

// ValidateTransactionCreation checks amount, type, category compatibility and
// the minor-income rule, in that order, then the references.
func (s *TransactionValidationService) ValidateTransactionCreation(
	amount decimal.Decimal,
	transactionType valueobject.TransactionType,
	categoryID int64,
	personID int64,
	isPersonMinor bool,
	categorySupportsType bool,
) error {
	candidate := rule.TransactionCandidate{
		Amount:               amount,
		Type:                 transactionType,
		IsPersonMinor:        isPersonMinor,
		CategorySupportsType: categorySupportsType,
	}
	if err := rule.Evaluate(candidate, rule.FactChecks()); err != nil {
		return err
	}

	if personID <= 0 || categoryID <= 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"transaction must reference a person and a category",
			domainerror.ErrInvalidTransaction,
		)
	}
	return nil
}

// ValidateBusinessRules checks only the fact-dependent rules.
func (s *TransactionValidationService) ValidateBusinessRules(
	isPersonMinor bool,
	transactionType valueobject.TransactionType,
	categoryCompatible bool,
) error {
	return rule.Evaluate(rule.TransactionCandidate{
		Type:                 transactionType,
		IsPersonMinor:        isPersonMinor,
		CategorySupportsType: categoryCompatible,
	}, rule.BusinessChecks())
}
