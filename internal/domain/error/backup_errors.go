// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Backup and reset domain errors.
var (
	// ErrInvalidBackupVersion is returned when a snapshot's version tag does not match.
	ErrInvalidBackupVersion = errors.New("invalid backup version")

	// ErrMalformedBackupFile is returned when a snapshot cannot be decoded at all.
	ErrMalformedBackupFile = errors.New("malformed backup file")

	// ErrResetFailed is returned when any step of the reset sequence failed.
	// Durable storage may be left partially cleared or written; there is no
	// compensating rollback.
	ErrResetFailed = errors.New("reset to defaults failed")
)

// BackupErrorCode defines error codes for backup and reset errors.
// Format: BKP-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Restore errors (01XXXX)
	ErrCodeInvalidBackupVersion BackupErrorCode = "BKP-010001"
	ErrCodeMalformedBackupFile  BackupErrorCode = "BKP-010002"

	// Reset errors (02XXXX)
	ErrCodeResetFailed BackupErrorCode = "BKP-020001"
)

// BackupError represents a backup or reset error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
