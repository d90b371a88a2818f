// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the store.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when the expense amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidDate is returned when the expense date cannot be parsed.
	ErrInvalidDate = errors.New("invalid expense date")

	// ErrInvalidPeriod is returned when a period filter value is not recognized.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrPersistenceFailed is returned when the expense collection could not be
	// durably written. Callers must not assume the expense was saved.
	ErrPersistenceFailed = errors.New("failed to persist expenses")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidDate     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPeriod   ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingFields   ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-010005"
	// Persistence errors (02XXXX)
	ErrCodePersistenceFailed ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
