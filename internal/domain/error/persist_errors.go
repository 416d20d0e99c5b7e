// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Persistence domain errors.
var (
	// ErrSerializeFailed is returned when a slice value cannot be serialized.
	ErrSerializeFailed = errors.New("failed to serialize slice value")

	// ErrBackendWriteFailed is returned when the durable backend rejects a write.
	ErrBackendWriteFailed = errors.New("durable backend write failed")

	// ErrBackendReadFailed is returned when the durable backend rejects a read.
	ErrBackendReadFailed = errors.New("durable backend read failed")

	// ErrBackendClearFailed is returned when the durable backend cannot be wiped.
	ErrBackendClearFailed = errors.New("durable backend clear failed")
)

// PersistErrorCode defines error codes for persistence errors.
// Format: PST-XXYYYY where XX is category and YYYY is specific error.
type PersistErrorCode string

const (
	// Serialization errors (01XXXX)
	ErrCodeSerializeFailed PersistErrorCode = "PST-010001"
	ErrCodeDecodeFailed    PersistErrorCode = "PST-010002"

	// Backend errors (02XXXX)
	ErrCodeBackendWrite PersistErrorCode = "PST-020001"
	ErrCodeBackendRead  PersistErrorCode = "PST-020002"
	ErrCodeBackendClear PersistErrorCode = "PST-020003"
)

// PersistError represents a persistence error with code and message.
// A PersistError never rolls back or blocks the in-memory state change that
// triggered the write; it is reported out-of-band.
type PersistError struct {
	Code    PersistErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewPersistError creates a new PersistError with the given code and message.
func NewPersistError(code PersistErrorCode, message string, err error) *PersistError {
	return &PersistError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
