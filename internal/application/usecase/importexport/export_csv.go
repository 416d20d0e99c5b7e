// Package importexport contains the CSV transaction exchange use cases.
package importexport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/budgetbook/backend/internal/application/store"
)

// csvHeader is the column layout shared by export and import.
var csvHeader = []string{"date", "description", "amount", "category", "store", "user", "notes"}

const csvDateLayout = "2006-01-02"

// ExportCSVOutput represents the output of a CSV export.
type ExportCSVOutput struct {
	Payload  []byte
	Filename string
	Count    int
}

// ExportCSVUseCase renders every transaction as a CSV document.
type ExportCSVUseCase struct {
	store *store.Store
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(s *store.Store) *ExportCSVUseCase {
	return &ExportCSVUseCase{store: s}
}

// Execute writes the current transactions in dispatch order.
func (uc *ExportCSVUseCase) Execute(ctx context.Context) (*ExportCSVOutput, error) {
	state := uc.store.State()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, tx := range state.Transactions {
		record := []string{
			tx.Date.Format(csvDateLayout),
			tx.Description,
			tx.Amount.String(),
			tx.Category,
			tx.Store,
			tx.User,
			tx.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportCSVOutput{
		Payload:  buf.Bytes(),
		Filename: fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format(csvDateLayout)),
		Count:    len(state.Transactions),
	}, nil
}
