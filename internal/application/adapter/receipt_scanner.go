package adapter

import (
	"context"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// ReceiptScanner turns a receipt image into a transaction draft. The store
// only consumes the resulting draft; how it was produced is the scanner's
// business.
type ReceiptScanner interface {
	// IsAvailable reports whether the scanner is configured.
	IsAvailable() bool

	// Scan extracts a {amount, description} draft from the image.
	Scan(ctx context.Context, image []byte, mimeType string) (*entity.ReceiptDraft, error)
}
