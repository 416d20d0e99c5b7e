package store

import (
	"context"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// LoadInitialState rebuilds the FinanceState from durable storage. A slice
// that was never written loads as its built-in default, unmodified. The
// static currency table always comes from configuration.
func LoadInitialState(ctx context.Context, p adapter.SlicePersister) entity.FinanceState {
	state := entity.DefaultState()

	loadSlice(ctx, p, entity.SliceTransactions, &state.Transactions)
	loadSlice(ctx, p, entity.SliceTransactionTemplates, &state.TransactionTemplates)
	loadSlice(ctx, p, entity.SliceRecurringTransactions, &state.RecurringTransactions)
	loadSlice(ctx, p, entity.SliceCategories, &state.Categories)
	loadSlice(ctx, p, entity.SliceStores, &state.Stores)
	loadSlice(ctx, p, entity.SliceUsers, &state.Users)
	loadSlice(ctx, p, entity.SliceBudgets, &state.Budgets)
	loadSlice(ctx, p, entity.SliceReceipts, &state.Receipts)
	state.Language = p.LoadString(ctx, entity.SliceLanguage, state.Language)
	state.DefaultCurrency = p.LoadString(ctx, entity.SliceDefaultCurrency, state.DefaultCurrency)
	state.Currencies = entity.DefaultCurrencies()

	return state
}

func loadSlice(ctx context.Context, p adapter.SlicePersister, slice entity.Slice, out any) {
	found, err := p.LoadInto(ctx, slice, out)
	if err != nil {
		// A corrupt or unreadable slice falls back to its default; the error
		// is logged, not fatal, so one bad key cannot brick startup.
		slog.Error("Failed to load state slice, using default",
			"slice", string(slice),
			"error", err,
		)
		return
	}
	if found {
		slog.Debug("Loaded state slice", "slice", string(slice))
	}
}
