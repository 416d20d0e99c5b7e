// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Action decoding errors. Unknown and malformed actions never reach the
// reducer; a dispatched unknown action is a silent no-op by design.
var (
	// ErrUnknownAction is returned when an action type string is not in the catalogue.
	ErrUnknownAction = errors.New("unknown action type")

	// ErrMalformedActionPayload is returned when an action payload cannot be decoded.
	ErrMalformedActionPayload = errors.New("malformed action payload")
)

// ActionErrorCode defines error codes for action decoding errors.
type ActionErrorCode string

const (
	ErrCodeUnknownAction    ActionErrorCode = "ACT-010001"
	ErrCodeMalformedPayload ActionErrorCode = "ACT-010002"
)

// ActionError represents an action decoding error with code and message.
type ActionError struct {
	Code    ActionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionError) Unwrap() error {
	return e.Err
}

// NewActionError creates a new ActionError with the given code and message.
func NewActionError(code ActionErrorCode, message string, err error) *ActionError {
	return &ActionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
