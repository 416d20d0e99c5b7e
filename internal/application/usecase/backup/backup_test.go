package backup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/persistence"
)

type noopQueue struct{}

func (noopQueue) Enqueue(adapter.PersistJob) {}

type noopNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *noopNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *noopNotifier) Failure(message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func TestCreateBackup(t *testing.T) {
	state := entity.DefaultState()
	state.Transactions = []entity.Transaction{
		{ID: "tx-1", Description: "Groceries", Amount: decimal.NewFromInt(42)},
	}
	s := store.New(state, noopQueue{})

	output, err := NewCreateBackupUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Snapshot.Version != entity.SnapshotVersion {
		t.Errorf("expected version %g, got %g", entity.SnapshotVersion, output.Snapshot.Version)
	}
	if output.Snapshot.Date.IsZero() {
		t.Error("expected a snapshot date")
	}
	if !strings.HasPrefix(output.Filename, "finance-backup-") || !strings.HasSuffix(output.Filename, ".json") {
		t.Errorf("unexpected filename %q", output.Filename)
	}

	var decoded entity.Snapshot
	if err := json.Unmarshal(output.Payload, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if len(decoded.Data.Transactions) != 1 {
		t.Errorf("expected the snapshot to carry the transactions, got %d", len(decoded.Data.Transactions))
	}
}

func TestRestoreBackup_RoundTrip(t *testing.T) {
	ctx := context.Background()

	original := entity.DefaultState()
	original.Language = "fr"
	original.Transactions = []entity.Transaction{
		{ID: "tx-1", Description: "Lunch", Amount: decimal.NewFromFloat(12.5)},
	}
	source := store.New(original, noopQueue{})

	backup, err := NewCreateBackupUseCase(source).Execute(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	target := store.New(entity.FinanceState{}, noopQueue{})
	restore := NewRestoreBackupUseCase(target, &noopNotifier{})

	if _, err := restore.Execute(ctx, RestoreBackupInput{Payload: backup.Payload}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	restored := target.State()
	if restored.Language != "fr" {
		t.Errorf("expected language fr, got %q", restored.Language)
	}
	if len(restored.Transactions) != 1 || restored.Transactions[0].ID != "tx-1" {
		t.Errorf("unexpected transactions: %+v", restored.Transactions)
	}
	if !restored.Transactions[0].Amount.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("expected amount 12.5, got %s", restored.Transactions[0].Amount)
	}
	if len(restored.Currencies) != len(entity.DefaultCurrencies()) {
		t.Error("expected the currency table to be rebuilt from configuration")
	}
}

func TestRestoreBackup_RejectsVersionMismatch(t *testing.T) {
	ctx := context.Background()

	initial := entity.FinanceState{Language: "en"}
	s := store.New(initial, noopQueue{})
	restore := NewRestoreBackupUseCase(s, &noopNotifier{})

	payload := []byte(`{"version":2.0,"date":"2026-08-30T00:00:00Z","data":{"language":"de"}}`)

	_, err := restore.Execute(ctx, RestoreBackupInput{Payload: payload})
	if err == nil {
		t.Fatal("expected an error for a version mismatch")
	}
	if !errors.Is(err, domainerror.ErrInvalidBackupVersion) {
		t.Errorf("expected ErrInvalidBackupVersion, got %v", err)
	}
	if s.State().Language != "en" {
		t.Error("expected the state to stay untouched after a rejected restore")
	}
}

func TestRestoreBackup_RejectsMalformedPayload(t *testing.T) {
	s := store.New(entity.FinanceState{}, noopQueue{})
	restore := NewRestoreBackupUseCase(s, &noopNotifier{})

	_, err := restore.Execute(context.Background(), RestoreBackupInput{Payload: []byte("not json")})
	if err == nil {
		t.Fatal("expected an error for a malformed payload")
	}
	if !errors.Is(err, domainerror.ErrMalformedBackupFile) {
		t.Errorf("expected ErrMalformedBackupFile, got %v", err)
	}
}

func TestResetDefaults(t *testing.T) {
	ctx := context.Background()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	backend := persistence.NewRedisBackend(client, "budgetbook:")
	notifier := &noopNotifier{}
	persister := persistence.NewSlicePersister(backend, notifier)

	// Seed durable storage and the in-memory state with non-default data.
	dirty := entity.DefaultState()
	dirty.Language = "fr"
	dirty.Transactions = []entity.Transaction{{ID: "tx-1", Description: "Old"}}
	for _, slice := range entity.PersistedSlices() {
		if err := persister.Save(ctx, slice, dirty.SliceValue(slice), false); err != nil {
			t.Fatalf("seed %s: %v", slice, err)
		}
	}
	s := store.New(dirty, noopQueue{})

	reset := NewResetDefaultsUseCase(s, backend, persister, notifier)
	if err := reset.Execute(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// In-memory state is back to the defaults.
	state := s.State()
	if state.Language != entity.DefaultLanguage {
		t.Errorf("expected default language, got %q", state.Language)
	}
	if len(state.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(state.Transactions))
	}

	// Durable storage mirrors the defaults.
	restored := store.LoadInitialState(ctx, persister)
	defaults := entity.DefaultState()
	if restored.Language != defaults.Language {
		t.Errorf("expected durable language %q, got %q", defaults.Language, restored.Language)
	}
	if len(restored.Categories) != len(defaults.Categories) {
		t.Errorf("expected %d durable categories, got %d", len(defaults.Categories), len(restored.Categories))
	}

	if len(notifier.successes) == 0 {
		t.Error("expected a reset success notification")
	}
}

func TestResetDefaults_ClearFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	backend := persistence.NewRedisBackend(client, "budgetbook:")
	notifier := &noopNotifier{}
	persister := persistence.NewSlicePersister(backend, notifier)

	dirty := entity.DefaultState()
	dirty.Language = "fr"
	s := store.New(dirty, noopQueue{})

	// A dead backend fails the first step of the protocol.
	mini.Close()

	reset := NewResetDefaultsUseCase(s, backend, persister, notifier)
	err := reset.Execute(ctx)
	if err == nil {
		t.Fatal("expected an error when the backend is unreachable")
	}
	if !errors.Is(err, domainerror.ErrResetFailed) {
		t.Errorf("expected ErrResetFailed, got %v", err)
	}
	if s.State().Language != "fr" {
		t.Error("expected the in-memory state to stay untouched")
	}
	if len(notifier.failures) == 0 {
		t.Error("expected a failure notification")
	}
}

var (
	_ adapter.PersistQueue = noopQueue{}
	_ adapter.Notifier     = (*noopNotifier)(nil)
)
