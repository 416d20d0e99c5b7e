package importexport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// ImportCSVInput represents the input for a CSV import.
type ImportCSVInput struct {
	Payload []byte
}

// ImportCSVOutput represents the output of a CSV import.
type ImportCSVOutput struct {
	Imported int
	Skipped  []ImportSkip
}

// ImportSkip records one rejected row and why it was rejected.
type ImportSkip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportCSVUseCase reads transactions from a CSV document and dispatches one
// add action per valid row. Invalid rows are skipped and reported, never
// fatal, so one bad line cannot abort a large import.
type ImportCSVUseCase struct {
	store *store.Store
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(s *store.Store) *ImportCSVUseCase {
	return &ImportCSVUseCase{store: s}
}

// Execute parses the document and imports row by row.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	r := csv.NewReader(bytes.NewReader(input.Payload))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	columns := headerIndex(header)

	out := &ImportCSVOutput{}
	line := 1

	for {
		line++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Skipped = append(out.Skipped, ImportSkip{Line: line, Reason: err.Error()})
			continue
		}

		tx, err := parseRecord(columns, record)
		if err != nil {
			out.Skipped = append(out.Skipped, ImportSkip{Line: line, Reason: err.Error()})
			continue
		}

		uc.store.Dispatch(ctx, action.AddTransaction{Transaction: tx})
		out.Imported++
	}

	slog.Info("CSV import finished",
		"imported", out.Imported,
		"skipped", len(out.Skipped),
	)

	return out, nil
}

// headerIndex maps lower-cased column names to their positions.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

// parseRecord builds a transaction from one CSV row.
func parseRecord(columns map[string]int, record []string) (entity.Transaction, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rawDate := field("date")
	if rawDate == "" {
		return entity.Transaction{}, fmt.Errorf("missing date")
	}
	date, err := time.ParseInLocation(csvDateLayout, rawDate, time.UTC)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("invalid date %q", rawDate)
	}

	rawAmount := field("amount")
	if rawAmount == "" {
		return entity.Transaction{}, fmt.Errorf("missing amount")
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("invalid amount %q", rawAmount)
	}

	description := field("description")
	if description == "" {
		return entity.Transaction{}, fmt.Errorf("missing description")
	}

	return entity.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    field("category"),
		Store:       field("store"),
		User:        field("user"),
		Notes:       field("notes"),
	}, nil
}
