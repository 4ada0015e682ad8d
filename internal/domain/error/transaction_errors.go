// Package error defines domain-specific errors for the household expenses application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransaction is returned when a transaction rule is violated.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionAlreadyCancelled is returned when cancelling a cancelled transaction.
	ErrTransactionAlreadyCancelled = errors.New("transaction already cancelled")
)

// Messages of the ordered creation checks.
const (
	MsgAmountNotPositive        = "amount must be greater than zero"
	MsgAmountPrecision          = "amount must not have more than two decimal places"
	MsgInvalidDescription       = "invalid or missing description"
	MsgInvalidTransactionType   = "invalid transaction type"
	MsgMinorsCannotRegister     = "minors cannot register income"
	MsgCategoryTypeIncompatible = "category does not support this transaction type"
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidDescription       TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010003"
	ErrCodeMinorIncome              TransactionErrorCode = "TXN-010004"
	ErrCodeCategoryTypeIncompatible TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeInactivePerson           TransactionErrorCode = "TXN-010007"
	ErrCodeInactiveCategory         TransactionErrorCode = "TXN-010008"
	ErrCodeAmountPrecision          TransactionErrorCode = "TXN-010009"

	// Lifecycle errors (02XXXX)
	ErrCodeTransactionAlreadyCancelled TransactionErrorCode = "TXN-020001"

	// Lookup errors (03XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-030001"
	ErrCodeTxnPersonNotFound   TransactionErrorCode = "TXN-030002"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-030003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
