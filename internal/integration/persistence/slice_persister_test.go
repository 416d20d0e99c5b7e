package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Failure(message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func newTestBackend(t *testing.T) *RedisBackend {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return NewRedisBackend(client, "budgetbook:")
}

func TestSlicePersister_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	backend := newTestBackend(t)
	notifier := &recordingNotifier{}
	persister := NewSlicePersister(backend, notifier)

	transactions := []entity.Transaction{
		{ID: "tx-1", Description: "Groceries", Amount: decimal.NewFromInt(42), Category: "Food"},
	}

	if err := persister.Save(ctx, entity.SliceTransactions, transactions, true); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	if len(notifier.successes) != 1 || notifier.successes[0] != "transactions saved successfully" {
		t.Errorf("expected a success notification, got %v", notifier.successes)
	}

	var loaded []entity.Transaction
	found, err := persister.LoadInto(ctx, entity.SliceTransactions, &loaded)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !found {
		t.Fatal("expected the slice to be found")
	}
	if len(loaded) != 1 || loaded[0].ID != "tx-1" {
		t.Errorf("unexpected loaded transactions: %+v", loaded)
	}
	if !loaded[0].Amount.Equal(decimal.NewFromInt(42)) {
		t.Errorf("expected amount 42, got %s", loaded[0].Amount)
	}
}

func TestSlicePersister_QuietSaveDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	backend := newTestBackend(t)
	notifier := &recordingNotifier{}
	persister := NewSlicePersister(backend, notifier)

	if err := persister.Save(ctx, entity.SliceLanguage, "nl", false); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	if len(notifier.successes) != 0 {
		t.Errorf("expected no notifications for a quiet save, got %v", notifier.successes)
	}
}

func TestSlicePersister_StringSlicesStoredRaw(t *testing.T) {
	ctx := context.Background()
	backend := newTestBackend(t)
	persister := NewSlicePersister(backend, &recordingNotifier{})

	if err := persister.Save(ctx, entity.SliceLanguage, "nl", false); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	// The stored value must be the bare string, not a JSON document.
	raw, found, err := backend.Get(ctx, string(entity.SliceLanguage))
	if err != nil || !found {
		t.Fatalf("expected the key to exist, found=%v err=%v", found, err)
	}
	if raw != "nl" {
		t.Errorf("expected raw value nl, got %q", raw)
	}

	if got := persister.LoadString(ctx, entity.SliceLanguage, "en"); got != "nl" {
		t.Errorf("expected nl, got %q", got)
	}
}

func TestSlicePersister_LoadStringDefault(t *testing.T) {
	ctx := context.Background()
	persister := NewSlicePersister(newTestBackend(t), &recordingNotifier{})

	if got := persister.LoadString(ctx, entity.SliceDefaultCurrency, "EUR"); got != "EUR" {
		t.Errorf("expected the default EUR, got %q", got)
	}
}

func TestSlicePersister_AbsentSliceLeavesOutUntouched(t *testing.T) {
	ctx := context.Background()
	persister := NewSlicePersister(newTestBackend(t), &recordingNotifier{})

	loaded := []entity.Transaction{{ID: "preexisting"}}
	found, err := persister.LoadInto(ctx, entity.SliceTransactions, &loaded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected the slice to be absent")
	}
	if len(loaded) != 1 || loaded[0].ID != "preexisting" {
		t.Errorf("expected out to be untouched, got %+v", loaded)
	}
}

func TestLoadInitialState_Idempotent(t *testing.T) {
	ctx := context.Background()
	backend := newTestBackend(t)
	persister := NewSlicePersister(backend, &recordingNotifier{})

	state := entity.DefaultState()
	state.Language = "fr"
	state.Transactions = []entity.Transaction{
		{ID: "tx-1", Description: "Lunch", Amount: decimal.NewFromInt(12)},
	}
	for _, slice := range entity.PersistedSlices() {
		if err := persister.Save(ctx, slice, state.SliceValue(slice), false); err != nil {
			t.Fatalf("save %s: %v", slice, err)
		}
	}

	first := store.LoadInitialState(ctx, persister)
	second := store.LoadInitialState(ctx, persister)

	if first.Language != "fr" || second.Language != "fr" {
		t.Errorf("expected language fr on both loads, got %q and %q", first.Language, second.Language)
	}
	if len(first.Transactions) != 1 || len(second.Transactions) != 1 {
		t.Error("expected both loads to yield the same transactions")
	}
	if len(first.Currencies) != len(entity.DefaultCurrencies()) {
		t.Error("expected the currency table to come from configuration")
	}
}

func TestRedisBackend_Clear(t *testing.T) {
	ctx := context.Background()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	backend := NewRedisBackend(client, "budgetbook:")

	if err := backend.Set(ctx, "transactions", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := backend.Set(ctx, "language", "en"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// A key outside the namespace must survive Clear.
	if err := client.Set(ctx, "other-app:key", "keep", 0).Err(); err != nil {
		t.Fatalf("set foreign key: %v", err)
	}

	if err := backend.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, found, _ := backend.Get(ctx, "transactions"); found {
		t.Error("expected transactions key to be cleared")
	}
	if _, found, _ := backend.Get(ctx, "language"); found {
		t.Error("expected language key to be cleared")
	}
	if val, err := client.Get(ctx, "other-app:key").Result(); err != nil || val != "keep" {
		t.Error("expected foreign key to survive the clear")
	}
}

var _ adapter.Notifier = (*recordingNotifier)(nil)
