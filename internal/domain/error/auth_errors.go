// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials don't match the demo account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010003"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010004"
)
