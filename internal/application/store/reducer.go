// Package store implements the finance store: the process-wide state
// container, its reducer, and the dispatch loop that feeds durable
// persistence.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// Reduce maps (state, action) to the next state. It is total and never
// fails: every variant of the sealed action catalogue is handled, and
// handlers that find nothing to do return the state unchanged.
//
// The second return value lists the slices the action changed; the dispatch
// wrapper persists exactly those. ResetToDefaults reports no slices because
// the reset protocol owns durable-storage sequencing around the dispatch.
//
// Reduce never mutates its input: collections are copied before they change,
// so previously returned snapshots stay consistent for concurrent readers.
func Reduce(state entity.FinanceState, a action.Action) (entity.FinanceState, []entity.Slice) {
	switch a := a.(type) {
	case action.AddTransaction:
		t := a.Transaction
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		t.Date = normalizeDate(t.Date)
		state.Transactions = appendCopy(state.Transactions, t)
		return state, changed(entity.SliceTransactions)

	case action.UpdateTransaction:
		state.Transactions = replaceByID(state.Transactions, a.Transaction,
			func(t entity.Transaction) string { return t.ID },
		)
		return state, changed(entity.SliceTransactions)

	case action.DeleteTransaction:
		// The receipt attached to this transaction, if any, is left behind.
		state.Transactions = deleteByID(state.Transactions, a.ID,
			func(t entity.Transaction) string { return t.ID },
		)
		return state, changed(entity.SliceTransactions)

	case action.AddTransactionTemplate:
		t := a.Template
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		state.TransactionTemplates = appendCopy(state.TransactionTemplates, t)
		return state, changed(entity.SliceTransactionTemplates)

	case action.DeleteTransactionTemplate:
		state.TransactionTemplates = deleteByID(state.TransactionTemplates, a.ID,
			func(t entity.TransactionTemplate) string { return t.ID },
		)
		return state, changed(entity.SliceTransactionTemplates)

	case action.AddRecurringTransaction:
		r := a.Recurring
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		r.NextDate = normalizeDate(r.NextDate)
		state.RecurringTransactions = appendCopy(state.RecurringTransactions, r)
		return state, changed(entity.SliceRecurringTransactions)

	case action.DeleteRecurringTransaction:
		state.RecurringTransactions = deleteByID(state.RecurringTransactions, a.ID,
			func(r entity.RecurringTransaction) string { return r.ID },
		)
		return state, changed(entity.SliceRecurringTransactions)

	case action.AddStore:
		s := a.Store
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Type == "" {
			s.Type = entity.DefaultStoreType
		}
		if s.Country == "" {
			s.Country = entity.DefaultStoreCountry
		}
		state.Stores = appendCopy(state.Stores, s)
		return state, changed(entity.SliceStores)

	case action.UpdateStore:
		state.Stores = replaceByID(state.Stores, a.Store,
			func(s entity.Store) string { return s.ID },
		)
		return state, changed(entity.SliceStores)

	case action.DeleteStore:
		// Transactions referencing the store keep their dangling id.
		state.Stores = deleteByID(state.Stores, a.ID,
			func(s entity.Store) string { return s.ID },
		)
		return state, changed(entity.SliceStores)

	case action.AddUser:
		u := a.User
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if u.Role == "" {
			u.Role = entity.RoleUser
		}
		state.Users = appendCopy(state.Users, u)
		return state, changed(entity.SliceUsers)

	case action.DeleteUser:
		state.Users = deleteByID(state.Users, a.ID,
			func(u entity.User) string { return u.ID },
		)
		return state, changed(entity.SliceUsers)

	case action.AddBudget:
		b := a.Budget
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		state.Budgets = appendCopy(state.Budgets, b)
		return state, changed(entity.SliceBudgets)

	case action.DeleteBudget:
		state.Budgets = deleteByID(state.Budgets, a.ID,
			func(b entity.Budget) string { return b.ID },
		)
		return state, changed(entity.SliceBudgets)

	case action.UpdateBudgets:
		state.Budgets = append([]entity.Budget(nil), a.Budgets...)
		return state, changed(entity.SliceBudgets)

	case action.AddCategory:
		for _, name := range state.Categories {
			if name == a.Name {
				// Duplicate names are a silent no-op; nothing is persisted.
				return state, nil
			}
		}
		state.Categories = appendCopy(state.Categories, a.Name)
		return state, changed(entity.SliceCategories)

	case action.DeleteCategory:
		kept := make([]string, 0, len(state.Categories))
		for _, name := range state.Categories {
			if name != a.Name {
				kept = append(kept, name)
			}
		}
		state.Categories = kept
		return state, changed(entity.SliceCategories)

	case action.AddReceipt:
		receipts := copyReceipts(state.Receipts)
		receipts[a.TransactionID] = a.ImageData
		state.Receipts = receipts
		return state, changed(entity.SliceReceipts)

	case action.DeleteReceipt:
		receipts := copyReceipts(state.Receipts)
		delete(receipts, a.TransactionID)
		state.Receipts = receipts
		return state, changed(entity.SliceReceipts)

	case action.SetLanguage:
		state.Language = a.Code
		return state, changed(entity.SliceLanguage)

	case action.SetDefaultCurrency:
		state.DefaultCurrency = a.Code
		return state, changed(entity.SliceDefaultCurrency)

	case action.ResetCategories:
		state.Categories = entity.DefaultState().Categories
		return state, changed(entity.SliceCategories)

	case action.ResetTransactions:
		state.Transactions = []entity.Transaction{}
		return state, changed(entity.SliceTransactions)

	case action.ResetToDefaults:
		return a.State, nil

	case action.RestoreBackup:
		return a.State, entity.PersistedSlices()

	default:
		// Unreachable for the sealed catalogue; kept so the reducer stays
		// total if a variant is ever added without a handler.
		return state, nil
	}
}

func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func appendCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func replaceByID[T any](items []T, replacement T, id func(T) string) []T {
	out := make([]T, len(items))
	target := id(replacement)
	for i, item := range items {
		if id(item) == target {
			out[i] = replacement
		} else {
			out[i] = item
		}
	}
	return out
}

func deleteByID[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

func copyReceipts(receipts map[string]string) map[string]string {
	out := make(map[string]string, len(receipts)+1)
	for id, image := range receipts {
		out[id] = image
	}
	return out
}

func changed(slices ...entity.Slice) []entity.Slice {
	return slices
}
