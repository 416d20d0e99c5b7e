// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidAccessKey is returned when the presented access key does not match.
	ErrInvalidAccessKey = errors.New("invalid access key")

	// ErrAdminRequired is returned when an operation needs the admin scope.
	ErrAdminRequired = errors.New("admin access required")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken     AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken     AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidAccessKey AuthErrorCode = "AUTH-010003"
	ErrCodeAdminRequired    AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited      AuthErrorCode = "AUTH-020001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
