// Package error defines domain-specific errors for the household expenses application.
package error

import "errors"

// Person domain errors.
var (
	// ErrInvalidPerson is returned when a person rule is violated.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrPersonNotFound is returned when a person is not found in the system.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonInactive is returned when mutating a deactivated person.
	ErrPersonInactive = errors.New("cannot update an inactive person")

	// ErrPersonAlreadyInactive is returned when deactivating an inactive person.
	ErrPersonAlreadyInactive = errors.New("person already inactive")

	// ErrPersonNameExists is returned when another person already uses the name.
	ErrPersonNameExists = errors.New("person name already exists")
)

// PersonErrorCode defines error codes for person errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PersonErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPersonName PersonErrorCode = "PER-010001"
	ErrCodeInvalidPersonAge  PersonErrorCode = "PER-010002"
	ErrCodeMissingPersonData PersonErrorCode = "PER-010003"

	// Lifecycle errors (02XXXX)
	ErrCodePersonInactive        PersonErrorCode = "PER-020001"
	ErrCodePersonAlreadyInactive PersonErrorCode = "PER-020002"

	// Lookup errors (03XXXX)
	ErrCodePersonNotFound   PersonErrorCode = "PER-030001"
	ErrCodePersonNameExists PersonErrorCode = "PER-030002"
)

// PersonError represents a person error with code and message.
type PersonError struct {
	Code    PersonErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersonError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersonError) Unwrap() error {
	return e.Err
}

// NewPersonError creates a new PersonError with the given code and message.
func NewPersonError(code PersonErrorCode, message string, err error) *PersonError {
	return &PersonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
