// Package service contains stateless domain services that combine
// specifications with facts supplied by the caller.
package service

import (
	"errors"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/specification"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// CategoryValidationService answers category rule questions for orchestration code.
type CategoryValidationService struct{}

// NewCategoryValidationService creates a new CategoryValidationService.
func NewCategoryValidationService() *CategoryValidationService {
	return &CategoryValidationService{}
}

// ValidateCategoryCreation checks description and purpose before a category is built.
func (s *CategoryValidationService) ValidateCategoryCreation(description string, purpose valueobject.CategoryPurpose) error {
	if _, err := valueobject.NewCategoryDescription(description); err != nil {
		message := "invalid category description"
		var valErr *domainerror.ValueError
		if errors.As(err, &valErr) {
			message = valErr.Message
		}
		return domainerror.NewCategoryError(domainerror.ErrCodeInvalidCategoryDescription, message, err)
	}
	if !specification.IsValidPurpose(purpose) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryPurpose,
			"invalid category purpose",
			domainerror.ErrInvalidCategory,
		)
	}
	return nil
}

// SupportsTransactionType computes the categorySupportsType fact.
func (s *CategoryValidationService) SupportsTransactionType(purpose valueobject.CategoryPurpose, t valueobject.TransactionType) bool {
	return specification.CanBeUsedWithTransactionType(purpose, t)
}
