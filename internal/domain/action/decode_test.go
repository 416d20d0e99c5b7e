package action

import (
	"encoding/json"
	"errors"
	"testing"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

func TestParse_KnownActions(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		payload string
		check   func(t *testing.T, a Action)
	}{
		{
			name:    "add transaction with camelCase fields",
			kind:    KindAddTransaction,
			payload: `{"id":"tx-1","description":"Groceries","amount":"42.50","category":"Food"}`,
			check: func(t *testing.T, a Action) {
				add, ok := a.(AddTransaction)
				if !ok {
					t.Fatalf("expected AddTransaction, got %T", a)
				}
				if add.Transaction.ID != "tx-1" {
					t.Errorf("expected id tx-1, got %s", add.Transaction.ID)
				}
				if add.Transaction.Amount.String() != "42.5" {
					t.Errorf("expected amount 42.5, got %s", add.Transaction.Amount)
				}
			},
		},
		{
			name:    "delete transaction takes a bare string payload",
			kind:    KindDeleteTransaction,
			payload: `"tx-1"`,
			check: func(t *testing.T, a Action) {
				del, ok := a.(DeleteTransaction)
				if !ok {
					t.Fatalf("expected DeleteTransaction, got %T", a)
				}
				if del.ID != "tx-1" {
					t.Errorf("expected id tx-1, got %s", del.ID)
				}
			},
		},
		{
			name:    "add category takes a bare string payload",
			kind:    KindAddCategory,
			payload: `"Health"`,
			check: func(t *testing.T, a Action) {
				add, ok := a.(AddCategory)
				if !ok {
					t.Fatalf("expected AddCategory, got %T", a)
				}
				if add.Name != "Health" {
					t.Errorf("expected name Health, got %s", add.Name)
				}
			},
		},
		{
			name:    "set language",
			kind:    KindSetLanguage,
			payload: `"nl"`,
			check: func(t *testing.T, a Action) {
				set, ok := a.(SetLanguage)
				if !ok {
					t.Fatalf("expected SetLanguage, got %T", a)
				}
				if set.Code != "nl" {
					t.Errorf("expected code nl, got %s", set.Code)
				}
			},
		},
		{
			name:    "add receipt",
			kind:    KindAddReceipt,
			payload: `{"transactionId":"tx-1","imageData":"base64data"}`,
			check: func(t *testing.T, a Action) {
				add, ok := a.(AddReceipt)
				if !ok {
					t.Fatalf("expected AddReceipt, got %T", a)
				}
				if add.TransactionID != "tx-1" || add.ImageData != "base64data" {
					t.Errorf("unexpected receipt payload: %+v", add)
				}
			},
		},
		{
			name:    "update budgets takes an array payload",
			kind:    KindUpdateBudgets,
			payload: `[{"id":"b-1","categoryId":"Food","amount":"100"}]`,
			check: func(t *testing.T, a Action) {
				upd, ok := a.(UpdateBudgets)
				if !ok {
					t.Fatalf("expected UpdateBudgets, got %T", a)
				}
				if len(upd.Budgets) != 1 || upd.Budgets[0].CategoryID != "Food" {
					t.Errorf("unexpected budgets: %+v", upd.Budgets)
				}
			},
		},
		{
			name:    "reset categories needs no payload",
			kind:    KindResetCategories,
			payload: ``,
			check: func(t *testing.T, a Action) {
				if _, ok := a.(ResetCategories); !ok {
					t.Fatalf("expected ResetCategories, got %T", a)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(Envelope{Type: tt.kind, Payload: json.RawMessage(tt.payload)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, a)
		})
	}
}

func TestParse_UnknownAction(t *testing.T) {
	_, err := Parse(Envelope{Type: "ADD_RECEIPT_V2", Payload: json.RawMessage(`{}`)})
	if err == nil {
		t.Fatal("expected an error for an unknown action type")
	}
	if !errors.Is(err, domainerror.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	var actionErr *domainerror.ActionError
	if !errors.As(err, &actionErr) {
		t.Fatal("expected a typed ActionError")
	}
	if actionErr.Code != domainerror.ErrCodeUnknownAction {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownAction, actionErr.Code)
	}
}

func TestParse_MalformedPayload(t *testing.T) {
	_, err := Parse(Envelope{Type: KindAddTransaction, Payload: json.RawMessage(`"not an object"`)})
	if err == nil {
		t.Fatal("expected an error for a malformed payload")
	}
	if !errors.Is(err, domainerror.ErrMalformedActionPayload) {
		t.Errorf("expected ErrMalformedActionPayload, got %v", err)
	}
}

func TestQuiet(t *testing.T) {
	if !Quiet(SetLanguage{Code: "fr"}) {
		t.Error("expected language changes to be quiet")
	}
	if Quiet(SetDefaultCurrency{Code: "USD"}) {
		t.Error("expected currency changes to notify")
	}
	if Quiet(AddCategory{Name: "Food"}) {
		t.Error("expected category changes to notify")
	}
}
