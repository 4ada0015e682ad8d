// Package error defines domain-specific errors for the household expenses application.
package error

import "errors"

// Category domain errors.
var (
	// ErrInvalidCategory is returned when a category rule is violated.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInactive is returned when mutating a deactivated category.
	ErrCategoryInactive = errors.New("cannot update an inactive category")

	// ErrCategoryAlreadyInactive is returned when deactivating an inactive category.
	ErrCategoryAlreadyInactive = errors.New("category already inactive")

	// ErrCategoryDescriptionExists is returned when the description is already taken.
	ErrCategoryDescriptionExists = errors.New("category description already exists")

	// ErrCategoryInUse is returned when deleting a category that still has transactions.
	ErrCategoryInUse = errors.New("category has transactions")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryDescription CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryPurpose     CategoryErrorCode = "CAT-010002"
	ErrCodeMissingCategoryFields      CategoryErrorCode = "CAT-010003"

	// Lifecycle errors (02XXXX)
	ErrCodeCategoryInactive        CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryAlreadyInactive CategoryErrorCode = "CAT-020002"

	// Lookup and conflict errors (03XXXX)
	ErrCodeCategoryNotFound          CategoryErrorCode = "CAT-030001"
	ErrCodeCategoryDescriptionExists CategoryErrorCode = "CAT-030002"
	ErrCodeCategoryInUse             CategoryErrorCode = "CAT-030003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
