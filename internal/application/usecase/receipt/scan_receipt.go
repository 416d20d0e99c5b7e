// Package receipt contains the receipt scanning use case.
package receipt

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// MaxReceiptImageBytes is the maximum accepted size of a receipt image.
const MaxReceiptImageBytes = 8 << 20

// ScanReceiptInput represents the input for a receipt scan.
type ScanReceiptInput struct {
	TransactionID string
	Image         []byte
	MimeType      string
}

// ScanReceiptOutput represents the output of a receipt scan.
type ScanReceiptOutput struct {
	Draft *entity.ReceiptDraft
}

// ScanReceiptUseCase extracts a transaction draft from a receipt image and
// attaches the image to the transaction.
type ScanReceiptUseCase struct {
	store   *store.Store
	scanner adapter.ReceiptScanner
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(s *store.Store, scanner adapter.ReceiptScanner) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		store:   s,
		scanner: scanner,
	}
}

// Execute scans the image and, when a transaction ID is given, stores the
// image as that transaction's receipt. The caller decides whether to apply
// the returned draft.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*ScanReceiptOutput, error) {
	if uc.scanner == nil || !uc.scanner.IsAvailable() {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeScannerNotConfigured,
			"receipt scanning is not configured",
			domainerror.ErrScannerNotConfigured,
		)
	}

	if len(input.Image) == 0 {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeEmptyReceiptImage,
			"no image data provided",
			domainerror.ErrEmptyReceiptImage,
		)
	}

	if len(input.Image) > MaxReceiptImageBytes {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeReceiptImageTooLarge,
			fmt.Sprintf("image exceeds %d bytes", MaxReceiptImageBytes),
			domainerror.ErrReceiptImageTooLarge,
		)
	}

	draft, err := uc.scanner.Scan(ctx, input.Image, input.MimeType)
	if err != nil {
		return nil, domainerror.NewScanError(
			domainerror.ErrCodeScanFailed,
			"scanner could not read the receipt",
			fmt.Errorf("%w: %w", domainerror.ErrScanFailed, err),
		)
	}

	if input.TransactionID != "" {
		uc.store.Dispatch(ctx, action.AddReceipt{
			TransactionID: input.TransactionID,
			ImageData:     base64.StdEncoding.EncodeToString(input.Image),
		})
	}

	slog.Info("Receipt scanned",
		"transaction_id", input.TransactionID,
		"has_amount", draft.Amount != nil,
	)

	return &ScanReceiptOutput{Draft: draft}, nil
}
