// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingStartDate is returned when a report window has no start date.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrMissingEndDate is returned when a report window has no end date.
	ErrMissingEndDate = errors.New("end date is required")

	// ErrInvalidDateRange is returned when the window end precedes its start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeMissingStartDate ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange ReportErrorCode = "RPT-010003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
