// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenRequest represents the request body for token issuance.
type TokenRequest struct {
	AccessKey string `json:"accessKey" binding:"required"`
}

// TokenResponse represents the response for token issuance.
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// DispatchRequest represents the request body for an action dispatch.
type DispatchRequest struct {
	Type    string          `json:"type" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// DispatchResponse represents the response for an action dispatch.
type DispatchResponse struct {
	Applied       bool     `json:"applied"`
	ChangedSlices []string `json:"changedSlices"`
}

// RestoreBackupResponse represents the response for a backup restoration.
type RestoreBackupResponse struct {
	Message      string `json:"message"`
	SnapshotDate string `json:"snapshotDate"`
}

// EmailBackupRequest represents the request body for emailing a backup.
type EmailBackupRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
}

// EmailBackupResponse represents the response for emailing a backup.
type EmailBackupResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// ScanReceiptRequest represents the request body for a receipt scan.
type ScanReceiptRequest struct {
	TransactionID string `json:"transactionId"`
	ImageData     string `json:"imageData" binding:"required"`
	MimeType      string `json:"mimeType"`
}

// ScanReceiptResponse represents the response for a receipt scan.
type ScanReceiptResponse struct {
	Amount      *string `json:"amount"`
	Description string  `json:"description"`
}

// ImportCSVResponse represents the response for a CSV import.
type ImportCSVResponse struct {
	Imported int         `json:"imported"`
	Skipped  []SkipEntry `json:"skipped,omitempty"`
}

// SkipEntry reports one CSV row that was not imported.
type SkipEntry struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// HealthResponse represents the response for the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Timestamp time.Time `json:"timestamp"`
}
