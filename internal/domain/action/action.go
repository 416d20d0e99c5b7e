// Package action defines the closed catalogue of finance store actions.
//
// Every mutation of the FinanceState is expressed as one of the variants
// below. The set is sealed: the reducer's type switch covers every variant,
// and unknown wire-level action types never make it past Parse.
package action

import "github.com/budgetbook/backend/internal/domain/entity"

// Kind is the wire-level action type string.
type Kind string

const (
	KindAddTransaction             Kind = "ADD_TRANSACTION"
	KindUpdateTransaction          Kind = "UPDATE_TRANSACTION"
	KindDeleteTransaction          Kind = "DELETE_TRANSACTION"
	KindAddTransactionTemplate     Kind = "ADD_TRANSACTION_TEMPLATE"
	KindDeleteTransactionTemplate  Kind = "DELETE_TRANSACTION_TEMPLATE"
	KindAddRecurringTransaction    Kind = "ADD_RECURRING_TRANSACTION"
	KindDeleteRecurringTransaction Kind = "DELETE_RECURRING_TRANSACTION"
	KindAddStore                   Kind = "ADD_STORE"
	KindUpdateStore                Kind = "UPDATE_STORE"
	KindDeleteStore                Kind = "DELETE_STORE"
	KindAddUser                    Kind = "ADD_USER"
	KindDeleteUser                 Kind = "DELETE_USER"
	KindAddBudget                  Kind = "ADD_BUDGET"
	KindDeleteBudget               Kind = "DELETE_BUDGET"
	KindUpdateBudgets              Kind = "UPDATE_BUDGETS"
	KindAddCategory                Kind = "ADD_CATEGORY"
	KindDeleteCategory             Kind = "DELETE_CATEGORY"
	KindAddReceipt                 Kind = "ADD_RECEIPT"
	KindDeleteReceipt              Kind = "DELETE_RECEIPT"
	KindSetLanguage                Kind = "SET_LANGUAGE"
	KindSetDefaultCurrency         Kind = "SET_DEFAULT_CURRENCY"
	KindResetCategories            Kind = "RESET_CATEGORIES"
	KindResetTransactions          Kind = "RESET_TRANSACTIONS"
	KindResetToDefaults            Kind = "RESET_TO_DEFAULTS"
	KindRestoreBackup              Kind = "RESTORE_BACKUP"
)

// Action is the sealed interface implemented by every action variant.
type Action interface {
	Kind() Kind
	isAction()
}

// AddTransaction appends a transaction. An empty ID is assigned at reduction
// time; the date is normalized to UTC.
type AddTransaction struct {
	Transaction entity.Transaction
}

// UpdateTransaction replaces the transaction with the matching ID.
// Silent no-op when the ID is not present.
type UpdateTransaction struct {
	Transaction entity.Transaction
}

// DeleteTransaction removes the transaction with the matching ID. Any
// receipt attached to it is deliberately left behind.
type DeleteTransaction struct {
	ID string
}

// AddTransactionTemplate appends a transaction template.
type AddTransactionTemplate struct {
	Template entity.TransactionTemplate
}

// DeleteTransactionTemplate removes the template with the matching ID.
type DeleteTransactionTemplate struct {
	ID string
}

// AddRecurringTransaction appends a recurring transaction, normalizing its
// next-occurrence date.
type AddRecurringTransaction struct {
	Recurring entity.RecurringTransaction
}

// DeleteRecurringTransaction removes the recurring transaction with the
// matching ID.
type DeleteRecurringTransaction struct {
	ID string
}

// AddStore appends a store, defaulting type and country when absent.
type AddStore struct {
	Store entity.Store
}

// UpdateStore replaces the store with the matching ID.
type UpdateStore struct {
	Store entity.Store
}

// DeleteStore removes the store with the matching ID. Transactions that
// reference it keep their dangling store id.
type DeleteStore struct {
	ID string
}

// AddUser appends a user, defaulting the role to "user".
type AddUser struct {
	User entity.User
}

// DeleteUser removes the user with the matching ID.
type DeleteUser struct {
	ID string
}

// AddBudget appends a budget record. Several budgets may target the same
// category; the model does not enforce uniqueness.
type AddBudget struct {
	Budget entity.Budget
}

// DeleteBudget removes the budget with the matching ID.
type DeleteBudget struct {
	ID string
}

// UpdateBudgets replaces the whole budgets collection.
type UpdateBudgets struct {
	Budgets []entity.Budget
}

// AddCategory appends a category name. Silent no-op when the name exists.
type AddCategory struct {
	Name string
}

// DeleteCategory removes a category name. Transactions and budgets that
// reference it keep their dangling name.
type DeleteCategory struct {
	Name string
}

// AddReceipt attaches an encoded receipt image to a transaction, replacing
// any previous one (at most one receipt per transaction).
type AddReceipt struct {
	TransactionID string
	ImageData     string
}

// DeleteReceipt removes the receipt attached to a transaction.
type DeleteReceipt struct {
	TransactionID string
}

// SetLanguage replaces the UI language. Persisted quietly: the action fires
// on every language toggle and must not spam notifications.
type SetLanguage struct {
	Code string
}

// SetDefaultCurrency replaces the default currency code.
type SetDefaultCurrency struct {
	Code string
}

// ResetCategories restores the built-in default category list.
type ResetCategories struct{}

// ResetTransactions clears all transactions.
type ResetTransactions struct{}

// ResetToDefaults replaces the whole state with a fully-formed default state
// prepared by the caller. The reducer itself performs no persistence for
// this action; the reset protocol owns durable-storage sequencing.
type ResetToDefaults struct {
	State entity.FinanceState
}

// RestoreBackup replaces the whole state with a prior snapshot's data. Every
// persisted slice is written out after the reduction.
type RestoreBackup struct {
	State entity.FinanceState
}

func (AddTransaction) Kind() Kind             { return KindAddTransaction }
func (UpdateTransaction) Kind() Kind          { return KindUpdateTransaction }
func (DeleteTransaction) Kind() Kind          { return KindDeleteTransaction }
func (AddTransactionTemplate) Kind() Kind     { return KindAddTransactionTemplate }
func (DeleteTransactionTemplate) Kind() Kind  { return KindDeleteTransactionTemplate }
func (AddRecurringTransaction) Kind() Kind    { return KindAddRecurringTransaction }
func (DeleteRecurringTransaction) Kind() Kind { return KindDeleteRecurringTransaction }
func (AddStore) Kind() Kind                   { return KindAddStore }
func (UpdateStore) Kind() Kind                { return KindUpdateStore }
func (DeleteStore) Kind() Kind                { return KindDeleteStore }
func (AddUser) Kind() Kind                    { return KindAddUser }
func (DeleteUser) Kind() Kind                 { return KindDeleteUser }
func (AddBudget) Kind() Kind                  { return KindAddBudget }
func (DeleteBudget) Kind() Kind               { return KindDeleteBudget }
func (UpdateBudgets) Kind() Kind              { return KindUpdateBudgets }
func (AddCategory) Kind() Kind                { return KindAddCategory }
func (DeleteCategory) Kind() Kind             { return KindDeleteCategory }
func (AddReceipt) Kind() Kind                 { return KindAddReceipt }
func (DeleteReceipt) Kind() Kind              { return KindDeleteReceipt }
func (SetLanguage) Kind() Kind                { return KindSetLanguage }
func (SetDefaultCurrency) Kind() Kind         { return KindSetDefaultCurrency }
func (ResetCategories) Kind() Kind            { return KindResetCategories }
func (ResetTransactions) Kind() Kind          { return KindResetTransactions }
func (ResetToDefaults) Kind() Kind            { return KindResetToDefaults }
func (RestoreBackup) Kind() Kind              { return KindRestoreBackup }

func (AddTransaction) isAction()             {}
func (UpdateTransaction) isAction()          {}
func (DeleteTransaction) isAction()          {}
func (AddTransactionTemplate) isAction()     {}
func (DeleteTransactionTemplate) isAction()  {}
func (AddRecurringTransaction) isAction()    {}
func (DeleteRecurringTransaction) isAction() {}
func (AddStore) isAction()                   {}
func (UpdateStore) isAction()                {}
func (DeleteStore) isAction()                {}
func (AddUser) isAction()                    {}
func (DeleteUser) isAction()                 {}
func (AddBudget) isAction()                  {}
func (DeleteBudget) isAction()               {}
func (UpdateBudgets) isAction()              {}
func (AddCategory) isAction()                {}
func (DeleteCategory) isAction()             {}
func (AddReceipt) isAction()                 {}
func (DeleteReceipt) isAction()              {}
func (SetLanguage) isAction()                {}
func (SetDefaultCurrency) isAction()         {}
func (ResetCategories) isAction()            {}
func (ResetTransactions) isAction()          {}
func (ResetToDefaults) isAction()            {}
func (RestoreBackup) isAction()              {}

// Quiet reports whether the action persists without user-facing
// notification. SetLanguage is the single quiet action in the catalogue.
func Quiet(a Action) bool {
	_, ok := a.(SetLanguage)
	return ok
}
