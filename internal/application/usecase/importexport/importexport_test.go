package importexport

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/entity"
)

type noopQueue struct{}

func (noopQueue) Enqueue(adapter.PersistJob) {}

func newTestStore(state entity.FinanceState) *store.Store {
	return store.New(state, noopQueue{})
}

func TestImportCSV(t *testing.T) {
	payload := strings.Join([]string{
		"date,description,amount,category,store,user,notes",
		"2026-08-10,Groceries,45.20,Food,Colruyt,Admin,weekly run",
		"2026-08-11,Train,7.50,Transport,,,",
		"not-a-date,Broken,10,Food,,,",
		"2026-08-12,,10,Food,,,",
		"2026-08-13,Coffee,abc,Food,,,",
	}, "\n")

	s := newTestStore(entity.DefaultState())
	uc := NewImportCSVUseCase(s)

	out, err := uc.Execute(context.Background(), ImportCSVInput{Payload: []byte(payload)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Imported != 2 {
		t.Errorf("expected 2 imported rows, got %d", out.Imported)
	}
	if len(out.Skipped) != 3 {
		t.Fatalf("expected 3 skipped rows, got %d: %+v", len(out.Skipped), out.Skipped)
	}
	if out.Skipped[0].Line != 4 {
		t.Errorf("expected the first skip on line 4, got %d", out.Skipped[0].Line)
	}

	txs := s.State().Transactions
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions in the store, got %d", len(txs))
	}
	if txs[0].ID == "" {
		t.Error("expected the import to assign an id")
	}
	if txs[0].Description != "Groceries" {
		t.Errorf("unexpected description %q", txs[0].Description)
	}
	if !txs[0].Amount.Equal(decimal.RequireFromString("45.20")) {
		t.Errorf("unexpected amount %s", txs[0].Amount)
	}
	wantDate := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	if !txs[0].Date.Equal(wantDate) {
		t.Errorf("expected date %s, got %s", wantDate, txs[0].Date)
	}
}

func TestImportCSV_ShuffledColumns(t *testing.T) {
	payload := strings.Join([]string{
		"Amount,Date,Description",
		"12.00,2026-08-01,Cinema",
	}, "\n")

	s := newTestStore(entity.DefaultState())
	out, err := NewImportCSVUseCase(s).Execute(context.Background(), ImportCSVInput{Payload: []byte(payload)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Imported != 1 || len(out.Skipped) != 0 {
		t.Fatalf("expected 1 imported and 0 skipped, got %d/%d", out.Imported, len(out.Skipped))
	}
	if got := s.State().Transactions[0].Description; got != "Cinema" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestImportCSV_EmptyPayload(t *testing.T) {
	s := newTestStore(entity.DefaultState())
	if _, err := NewImportCSVUseCase(s).Execute(context.Background(), ImportCSVInput{}); err == nil {
		t.Fatal("expected an error for an empty document")
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	state := entity.DefaultState()
	state.Transactions = []entity.Transaction{
		{
			ID:          "tx-1",
			Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			Description: "Groceries",
			Amount:      decimal.RequireFromString("45.20"),
			Category:    "Food",
			Store:       "Colruyt",
			User:        "Admin",
			Notes:       "weekly run",
		},
		{
			ID:          "tx-2",
			Date:        time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
			Description: "Train",
			Amount:      decimal.RequireFromString("7.50"),
			Category:    "Transport",
		},
	}

	out, err := NewExportCSVUseCase(newTestStore(state)).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("expected count 2, got %d", out.Count)
	}
	if !strings.HasPrefix(out.Filename, "transactions-") || !strings.HasSuffix(out.Filename, ".csv") {
		t.Errorf("unexpected filename %q", out.Filename)
	}

	lines := strings.Split(strings.TrimSpace(string(out.Payload)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "date,description,amount,category,store,user,notes" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "2026-08-10,Groceries,45.2,Food,Colruyt,Admin,weekly run" {
		t.Errorf("unexpected row %q", lines[1])
	}

	// An exported document must import back without skips.
	imported := newTestStore(entity.DefaultState())
	res, err := NewImportCSVUseCase(imported).Execute(context.Background(), ImportCSVInput{Payload: out.Payload})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Imported != 2 || len(res.Skipped) != 0 {
		t.Fatalf("expected a clean round trip, got %d imported %d skipped", res.Imported, len(res.Skipped))
	}
	if got := imported.State().Transactions[1].Description; got != "Train" {
		t.Errorf("unexpected description %q", got)
	}
}
