package action

import (
	"encoding/json"
	"fmt"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// Envelope is the wire form of a dispatched action: {type, payload}.
type Envelope struct {
	Type    Kind            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// receiptPayload is the wire form of receipt actions.
type receiptPayload struct {
	TransactionID string `json:"transactionId"`
	ImageData     string `json:"imageData"`
}

// Parse decodes a wire envelope into a typed action. An unrecognized type
// yields ErrUnknownAction; callers treat that as a silent no-op to stay
// forward-compatible with newer producers. A payload that does not decode
// into the variant's shape yields ErrMalformedActionPayload.
func Parse(e Envelope) (Action, error) {
	switch e.Type {
	case KindAddTransaction:
		var t entity.Transaction
		if err := decode(e, &t); err != nil {
			return nil, err
		}
		return AddTransaction{Transaction: t}, nil
	case KindUpdateTransaction:
		var t entity.Transaction
		if err := decode(e, &t); err != nil {
			return nil, err
		}
		return UpdateTransaction{Transaction: t}, nil
	case KindDeleteTransaction:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteTransaction{ID: id}, nil
	case KindAddTransactionTemplate:
		var t entity.TransactionTemplate
		if err := decode(e, &t); err != nil {
			return nil, err
		}
		return AddTransactionTemplate{Template: t}, nil
	case KindDeleteTransactionTemplate:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteTransactionTemplate{ID: id}, nil
	case KindAddRecurringTransaction:
		var r entity.RecurringTransaction
		if err := decode(e, &r); err != nil {
			return nil, err
		}
		return AddRecurringTransaction{Recurring: r}, nil
	case KindDeleteRecurringTransaction:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteRecurringTransaction{ID: id}, nil
	case KindAddStore:
		var s entity.Store
		if err := decode(e, &s); err != nil {
			return nil, err
		}
		return AddStore{Store: s}, nil
	case KindUpdateStore:
		var s entity.Store
		if err := decode(e, &s); err != nil {
			return nil, err
		}
		return UpdateStore{Store: s}, nil
	case KindDeleteStore:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteStore{ID: id}, nil
	case KindAddUser:
		var u entity.User
		if err := decode(e, &u); err != nil {
			return nil, err
		}
		return AddUser{User: u}, nil
	case KindDeleteUser:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteUser{ID: id}, nil
	case KindAddBudget:
		var b entity.Budget
		if err := decode(e, &b); err != nil {
			return nil, err
		}
		return AddBudget{Budget: b}, nil
	case KindDeleteBudget:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteBudget{ID: id}, nil
	case KindUpdateBudgets:
		var budgets []entity.Budget
		if err := decode(e, &budgets); err != nil {
			return nil, err
		}
		return UpdateBudgets{Budgets: budgets}, nil
	case KindAddCategory:
		name, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return AddCategory{Name: name}, nil
	case KindDeleteCategory:
		name, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteCategory{Name: name}, nil
	case KindAddReceipt:
		var p receiptPayload
		if err := decode(e, &p); err != nil {
			return nil, err
		}
		return AddReceipt{TransactionID: p.TransactionID, ImageData: p.ImageData}, nil
	case KindDeleteReceipt:
		id, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return DeleteReceipt{TransactionID: id}, nil
	case KindSetLanguage:
		code, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return SetLanguage{Code: code}, nil
	case KindSetDefaultCurrency:
		code, err := decodeString(e)
		if err != nil {
			return nil, err
		}
		return SetDefaultCurrency{Code: code}, nil
	case KindResetCategories:
		return ResetCategories{}, nil
	case KindResetTransactions:
		return ResetTransactions{}, nil
	case KindResetToDefaults:
		var s entity.FinanceState
		if err := decode(e, &s); err != nil {
			return nil, err
		}
		return ResetToDefaults{State: s}, nil
	case KindRestoreBackup:
		var s entity.FinanceState
		if err := decode(e, &s); err != nil {
			return nil, err
		}
		return RestoreBackup{State: s}, nil
	default:
		return nil, domainerror.NewActionError(
			domainerror.ErrCodeUnknownAction,
			fmt.Sprintf("unknown action type %q", e.Type),
			domainerror.ErrUnknownAction,
		)
	}
}

func decode(e Envelope, out any) error {
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return domainerror.NewActionError(
			domainerror.ErrCodeMalformedPayload,
			fmt.Sprintf("malformed payload for action %q", e.Type),
			domainerror.ErrMalformedActionPayload,
		)
	}
	return nil
}

// decodeString accepts the original wire convention of a bare JSON string
// payload ("tx-123") for id- and code-carrying actions.
func decodeString(e Envelope) (string, error) {
	var s string
	if err := decode(e, &s); err != nil {
		return "", err
	}
	return s, nil
}
