// Package error defines domain-specific errors for the household expenses application.
package error

import "errors"

// ErrInvalidArgument is the root of every scalar construction failure.
var ErrInvalidArgument = errors.New("invalid argument")

// Value object errors.
var (
	// ErrCurrencyMismatch is returned when arithmetic mixes two currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// ValueErrorCode defines error codes for value object errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValueErrorCode string

const (
	// Money errors (01XXXX)
	ErrCodeNonPositiveAmount ValueErrorCode = "VAL-010001"
	ErrCodeMissingCurrency   ValueErrorCode = "VAL-010002"
	ErrCodeCurrencyMismatch  ValueErrorCode = "VAL-010003"

	// Age errors (02XXXX)
	ErrCodeAgeOutOfRange ValueErrorCode = "VAL-020001"

	// Text errors (03XXXX)
	ErrCodeBlankText   ValueErrorCode = "VAL-030001"
	ErrCodeTextTooLong ValueErrorCode = "VAL-030002"
)

// ValueError is the invalid-argument class raised by value object factories.
type ValueError struct {
	Code    ValueErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// NewValueError creates a new ValueError. A nil err defaults to ErrInvalidArgument.
func NewValueError(code ValueErrorCode, field, message string, err error) *ValueError {
	if err == nil {
		err = ErrInvalidArgument
	}
	return &ValueError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
