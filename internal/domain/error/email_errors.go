// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailNotConfigured is returned when email delivery is requested but no
	// API key is configured.
	ErrEmailNotConfigured = errors.New("email delivery is not configured")

	// ErrEmailSendFailed is returned when the provider rejected the send.
	ErrEmailSendFailed = errors.New("failed to send email")
)

// EmailErrorCode defines error codes for email errors.
type EmailErrorCode string

const (
	ErrCodeEmailNotConfigured    EmailErrorCode = "EML-010001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
