// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Receipt scan domain errors.
var (
	// ErrScannerNotConfigured is returned when receipt scanning is requested but
	// no AI API key is configured.
	ErrScannerNotConfigured = errors.New("receipt scanner is not configured")

	// ErrEmptyReceiptImage is returned when no image data was provided.
	ErrEmptyReceiptImage = errors.New("receipt image is empty")

	// ErrReceiptImageTooLarge is returned when the image exceeds the size limit.
	ErrReceiptImageTooLarge = errors.New("receipt image too large")

	// ErrScanFailed is returned when the scanner could not produce a draft.
	ErrScanFailed = errors.New("receipt scan failed")
)

// ScanErrorCode defines error codes for receipt scan errors.
type ScanErrorCode string

const (
	ErrCodeScannerNotConfigured ScanErrorCode = "SCN-010001"
	ErrCodeEmptyReceiptImage    ScanErrorCode = "SCN-010002"
	ErrCodeReceiptImageTooLarge ScanErrorCode = "SCN-010003"
	ErrCodeScanFailed           ScanErrorCode = "SCN-020001"
)

// ScanError represents a receipt scan error with code and message.
type ScanError struct {
	Code    ScanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError with the given code and message.
func NewScanError(code ScanErrorCode, message string, err error) *ScanError {
	return &ScanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
