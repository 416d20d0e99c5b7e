package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestReduce_AddTransaction(t *testing.T) {
	t.Run("assigns an id when absent", func(t *testing.T) {
		state := entity.DefaultState()
		next, slices := Reduce(state, action.AddTransaction{
			Transaction: entity.Transaction{
				Description: "Groceries",
				Amount:      decimal.NewFromInt(42),
				Category:    "Food",
			},
		})

		if len(next.Transactions) != len(state.Transactions)+1 {
			t.Fatalf("expected %d transactions, got %d", len(state.Transactions)+1, len(next.Transactions))
		}
		added := next.Transactions[len(next.Transactions)-1]
		if added.ID == "" {
			t.Error("expected an assigned id")
		}
		if added.Date.IsZero() {
			t.Error("expected a normalized date")
		}
		assertSlices(t, slices, entity.SliceTransactions)
	})

	t.Run("keeps a provided id and normalizes the date to UTC", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		date := time.Date(2026, 3, 15, 10, 0, 0, 0, loc)

		next, _ := Reduce(entity.FinanceState{}, action.AddTransaction{
			Transaction: entity.Transaction{
				ID:          "tx-1",
				Date:        date,
				Description: "Coffee",
				Amount:      decimal.NewFromFloat(3.5),
			},
		})

		added := next.Transactions[0]
		if added.ID != "tx-1" {
			t.Errorf("expected id tx-1, got %s", added.ID)
		}
		if added.Date.Location() != time.UTC {
			t.Errorf("expected UTC date, got %v", added.Date.Location())
		}
		if !added.Date.Equal(date) {
			t.Errorf("expected the same instant, got %v", added.Date)
		}
	})

	t.Run("does not mutate the previous state", func(t *testing.T) {
		state := entity.FinanceState{
			Transactions: []entity.Transaction{{ID: "tx-1", Description: "Old"}},
		}
		before := len(state.Transactions)

		Reduce(state, action.AddTransaction{
			Transaction: entity.Transaction{Description: "New"},
		})

		if len(state.Transactions) != before {
			t.Error("expected input state to stay unchanged")
		}
	})
}

func TestReduce_UpdateTransaction(t *testing.T) {
	state := entity.FinanceState{
		Transactions: []entity.Transaction{
			{ID: "tx-1", Description: "Old"},
			{ID: "tx-2", Description: "Other"},
		},
	}

	t.Run("replaces the matching transaction", func(t *testing.T) {
		next, slices := Reduce(state, action.UpdateTransaction{
			Transaction: entity.Transaction{ID: "tx-1", Description: "Updated"},
		})

		if next.Transactions[0].Description != "Updated" {
			t.Errorf("expected updated description, got %s", next.Transactions[0].Description)
		}
		if next.Transactions[1].Description != "Other" {
			t.Error("expected unrelated transaction to stay unchanged")
		}
		assertSlices(t, slices, entity.SliceTransactions)
	})

	t.Run("missing id leaves the collection unchanged but still reports the slice", func(t *testing.T) {
		next, slices := Reduce(state, action.UpdateTransaction{
			Transaction: entity.Transaction{ID: "tx-404", Description: "Ghost"},
		})

		if len(next.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(next.Transactions))
		}
		for i := range next.Transactions {
			if next.Transactions[i].Description != state.Transactions[i].Description {
				t.Error("expected transactions to stay unchanged")
			}
		}
		assertSlices(t, slices, entity.SliceTransactions)
	})
}

func TestReduce_DeleteTransaction(t *testing.T) {
	state := entity.FinanceState{
		Transactions: []entity.Transaction{{ID: "tx-1"}, {ID: "tx-2"}},
		Receipts:     map[string]string{"tx-1": "image-data"},
	}

	next, slices := Reduce(state, action.DeleteTransaction{ID: "tx-1"})

	if len(next.Transactions) != 1 || next.Transactions[0].ID != "tx-2" {
		t.Errorf("expected only tx-2 to remain, got %+v", next.Transactions)
	}
	if _, ok := next.Receipts["tx-1"]; !ok {
		t.Error("expected the orphaned receipt to stay")
	}
	assertSlices(t, slices, entity.SliceTransactions)
}

func TestReduce_AddStoreDefaults(t *testing.T) {
	next, _ := Reduce(entity.FinanceState{}, action.AddStore{
		Store: entity.Store{Name: "Bakery"},
	})

	added := next.Stores[0]
	if added.Type != entity.DefaultStoreType {
		t.Errorf("expected default type %q, got %q", entity.DefaultStoreType, added.Type)
	}
	if added.Country != entity.DefaultStoreCountry {
		t.Errorf("expected default country %q, got %q", entity.DefaultStoreCountry, added.Country)
	}
}

func TestReduce_AddUserDefaultRole(t *testing.T) {
	next, _ := Reduce(entity.FinanceState{}, action.AddUser{
		User: entity.User{Name: "Sam"},
	})

	if next.Users[0].Role != entity.RoleUser {
		t.Errorf("expected default role %q, got %q", entity.RoleUser, next.Users[0].Role)
	}
}

func TestReduce_Categories(t *testing.T) {
	state := entity.FinanceState{Categories: []string{"Food", "Transport"}}

	t.Run("adds a new category", func(t *testing.T) {
		next, slices := Reduce(state, action.AddCategory{Name: "Health"})
		if len(next.Categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(next.Categories))
		}
		assertSlices(t, slices, entity.SliceCategories)
	})

	t.Run("duplicate name is a silent no-op", func(t *testing.T) {
		next, slices := Reduce(state, action.AddCategory{Name: "Food"})
		if len(next.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(next.Categories))
		}
		if len(slices) != 0 {
			t.Errorf("expected no changed slices, got %v", slices)
		}
	})

	t.Run("delete removes the category", func(t *testing.T) {
		next, _ := Reduce(state, action.DeleteCategory{Name: "Food"})
		if len(next.Categories) != 1 || next.Categories[0] != "Transport" {
			t.Errorf("expected only Transport to remain, got %v", next.Categories)
		}
	})

	t.Run("reset restores the default list", func(t *testing.T) {
		next, slices := Reduce(state, action.ResetCategories{})
		defaults := entity.DefaultState().Categories
		if len(next.Categories) != len(defaults) {
			t.Errorf("expected %d default categories, got %d", len(defaults), len(next.Categories))
		}
		assertSlices(t, slices, entity.SliceCategories)
	})
}

func TestReduce_UpdateBudgetsCopiesInput(t *testing.T) {
	budgets := []entity.Budget{{ID: "b-1", CategoryID: "Food", Amount: decimal.NewFromInt(100)}}

	next, slices := Reduce(entity.FinanceState{}, action.UpdateBudgets{Budgets: budgets})

	budgets[0].CategoryID = "Mutated"
	if next.Budgets[0].CategoryID != "Food" {
		t.Error("expected the reducer to copy the budgets slice")
	}
	assertSlices(t, slices, entity.SliceBudgets)
}

func TestReduce_Receipts(t *testing.T) {
	state := entity.FinanceState{Receipts: map[string]string{"tx-1": "old"}}

	t.Run("add stores the image under the transaction id", func(t *testing.T) {
		next, slices := Reduce(state, action.AddReceipt{TransactionID: "tx-2", ImageData: "new"})
		if next.Receipts["tx-2"] != "new" {
			t.Error("expected the receipt to be stored")
		}
		if state.Receipts["tx-2"] != "" {
			t.Error("expected the previous state's receipts to stay unchanged")
		}
		assertSlices(t, slices, entity.SliceReceipts)
	})

	t.Run("delete removes the image", func(t *testing.T) {
		next, _ := Reduce(state, action.DeleteReceipt{TransactionID: "tx-1"})
		if _, ok := next.Receipts["tx-1"]; ok {
			t.Error("expected the receipt to be removed")
		}
	})
}

func TestReduce_Settings(t *testing.T) {
	next, slices := Reduce(entity.FinanceState{}, action.SetLanguage{Code: "nl"})
	if next.Language != "nl" {
		t.Errorf("expected language nl, got %s", next.Language)
	}
	assertSlices(t, slices, entity.SliceLanguage)

	next, slices = Reduce(entity.FinanceState{}, action.SetDefaultCurrency{Code: "USD"})
	if next.DefaultCurrency != "USD" {
		t.Errorf("expected currency USD, got %s", next.DefaultCurrency)
	}
	assertSlices(t, slices, entity.SliceDefaultCurrency)
}

func TestReduce_ResetTransactions(t *testing.T) {
	state := entity.FinanceState{
		Transactions: []entity.Transaction{{ID: "tx-1"}},
	}

	next, slices := Reduce(state, action.ResetTransactions{})
	if len(next.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(next.Transactions))
	}
	assertSlices(t, slices, entity.SliceTransactions)
}

func TestReduce_ResetToDefaults(t *testing.T) {
	defaults := entity.DefaultState()
	next, slices := Reduce(entity.FinanceState{}, action.ResetToDefaults{State: defaults})

	if len(next.Categories) != len(defaults.Categories) {
		t.Error("expected the default state to be installed")
	}
	if len(slices) != 0 {
		t.Errorf("expected no changed slices, the reset protocol persists itself, got %v", slices)
	}
}

func TestReduce_RestoreBackup(t *testing.T) {
	restored := entity.DefaultState()
	restored.Language = "fr"

	next, slices := Reduce(entity.FinanceState{}, action.RestoreBackup{State: restored})

	if next.Language != "fr" {
		t.Errorf("expected restored language fr, got %s", next.Language)
	}
	if len(slices) != len(entity.PersistedSlices()) {
		t.Errorf("expected every persisted slice to be reported, got %d", len(slices))
	}
}

func assertSlices(t *testing.T, got []entity.Slice, want ...entity.Slice) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected changed slices %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected slice %s at position %d, got %s", want[i], i, got[i])
		}
	}
}
