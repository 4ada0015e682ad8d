package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func TestCategoryValidationService_ValidateCategoryCreation(t *testing.T) {
	svc := NewCategoryValidationService()

	tests := []struct {
		name         string
		description  string
		purpose      valueobject.CategoryPurpose
		expectedCode domainerror.CategoryErrorCode
	}{
		{name: "valid", description: "Food", purpose: valueobject.CategoryPurposeExpense},
		{name: "blank description", description: " ", purpose: valueobject.CategoryPurposeBoth, expectedCode: domainerror.ErrCodeInvalidCategoryDescription},
		{name: "long description", description: strings.Repeat("d", 401), purpose: valueobject.CategoryPurposeBoth, expectedCode: domainerror.ErrCodeInvalidCategoryDescription},
		{name: "unknown purpose", description: "Food", purpose: valueobject.CategoryPurpose(42), expectedCode: domainerror.ErrCodeInvalidCategoryPurpose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateCategoryCreation(tt.description, tt.purpose)
			if tt.expectedCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var catErr *domainerror.CategoryError
			if !errors.As(err, &catErr) || catErr.Code != tt.expectedCode {
				t.Fatalf("expected %s, got %v", tt.expectedCode, err)
			}
		})
	}
}

func TestCategoryValidationService_DescriptionUsesValueObject(t *testing.T) {
	svc := NewCategoryValidationService()

	err := svc.ValidateCategoryCreation(strings.Repeat("d", 401), valueobject.CategoryPurposeBoth)

	var valErr *domainerror.ValueError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected wrapped ValueError, got %v", err)
	}
	if valErr.Code != domainerror.ErrCodeTextTooLong {
		t.Errorf("value code = %s, want %s", valErr.Code, domainerror.ErrCodeTextTooLong)
	}
	if !errors.Is(err, domainerror.ErrInvalidArgument) {
		t.Error("expected error to wrap ErrInvalidArgument")
	}

	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) || catErr.Message != "description must not exceed 400 characters" {
		t.Errorf("unexpected category error %v", err)
	}
}

func TestCategoryValidationService_SupportsTransactionType(t *testing.T) {
	svc := NewCategoryValidationService()

	if !svc.SupportsTransactionType(valueobject.CategoryPurposeBoth, valueobject.TransactionTypeIncome) {
		t.Error("both should support income")
	}
	if svc.SupportsTransactionType(valueobject.CategoryPurposeExpense, valueobject.TransactionTypeIncome) {
		t.Error("expense should not support income")
	}
}

func TestTransactionValidationService_ValidateTransactionCreation(t *testing.T) {
	svc := NewTransactionValidationService()
	expense := valueobject.TransactionTypeExpense
	income := valueobject.TransactionTypeIncome

	tests := []struct {
		name                 string
		amount               string
		txType               valueobject.TransactionType
		categoryID, personID int64
		minor, supports      bool
		expectedCode         domainerror.TransactionErrorCode
	}{
		{name: "minor expense", amount: "50", txType: expense, categoryID: 1, personID: 1, minor: true, supports: true},
		{name: "minor income", amount: "1000", txType: income, categoryID: 1, personID: 1, minor: true, supports: true, expectedCode: domainerror.ErrCodeMinorIncome},
		{name: "zero amount", amount: "0", txType: expense, categoryID: 1, personID: 1, supports: true, expectedCode: domainerror.ErrCodeInvalidAmount},
		{name: "bad type", amount: "1", txType: 0, categoryID: 1, personID: 1, supports: true, expectedCode: domainerror.ErrCodeInvalidTransactionType},
		{name: "incompatible category", amount: "1", txType: income, categoryID: 1, personID: 1, supports: false, expectedCode: domainerror.ErrCodeCategoryTypeIncompatible},
		{name: "minor income on incompatible category", amount: "10", txType: income, categoryID: 1, personID: 1, minor: true, supports: false, expectedCode: domainerror.ErrCodeCategoryTypeIncompatible},
		{name: "sub-cent amount", amount: "0.001", txType: expense, categoryID: 1, personID: 1, supports: true, expectedCode: domainerror.ErrCodeAmountPrecision},
		{name: "missing person", amount: "1", txType: expense, categoryID: 1, personID: 0, supports: true, expectedCode: domainerror.ErrCodeMissingTransactionFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateTransactionCreation(decimal.RequireFromString(tt.amount), tt.txType, tt.categoryID, tt.personID, tt.minor, tt.supports)
			if tt.expectedCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) || txErr.Code != tt.expectedCode {
				t.Fatalf("expected %s, got %v", tt.expectedCode, err)
			}
		})
	}
}

func TestTransactionValidationService_ValidateBusinessRules(t *testing.T) {
	svc := NewTransactionValidationService()

	if err := svc.ValidateBusinessRules(false, valueobject.TransactionTypeIncome, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.ValidateBusinessRules(true, valueobject.TransactionTypeIncome, true); !errors.Is(err, domainerror.ErrInvalidTransaction) {
		t.Fatalf("expected invalid transaction, got %v", err)
	}
	if err := svc.ValidateBusinessRules(false, valueobject.TransactionTypeExpense, false); !errors.Is(err, domainerror.ErrInvalidTransaction) {
		t.Fatalf("expected invalid transaction, got %v", err)
	}
}
