// Package entity defines the core business entities for the domain layer.
package entity

// Slice identifies one top-level field of FinanceState. Each persisted slice
// lives under its own durable-storage key named after the slice.
type Slice string

const (
	SliceTransactions          Slice = "transactions"
	SliceTransactionTemplates  Slice = "transactionTemplates"
	SliceRecurringTransactions Slice = "recurringTransactions"
	SliceCategories            Slice = "categories"
	SliceStores                Slice = "stores"
	SliceUsers                 Slice = "users"
	SliceBudgets               Slice = "budgets"
	SliceReceipts              Slice = "receipts"
	SliceLanguage              Slice = "language"
	SliceDefaultCurrency       Slice = "defaultCurrency"
)

// PersistedSlices lists every slice that is mirrored to durable storage.
// The static currency table is deliberately absent: it is configuration and
// is always rebuilt from DefaultCurrencies.
func PersistedSlices() []Slice {
	return []Slice{
		SliceTransactions,
		SliceTransactionTemplates,
		SliceRecurringTransactions,
		SliceCategories,
		SliceStores,
		SliceUsers,
		SliceBudgets,
		SliceReceipts,
		SliceLanguage,
		SliceDefaultCurrency,
	}
}

// FinanceState is the whole application state held by the finance store.
// Reductions never mutate a FinanceState in place; they build a new value so
// readers always observe a consistent snapshot.
type FinanceState struct {
	Transactions          []Transaction          `json:"transactions"`
	TransactionTemplates  []TransactionTemplate  `json:"transactionTemplates"`
	RecurringTransactions []RecurringTransaction `json:"recurringTransactions"`
	Categories            []string               `json:"categories"`
	Stores                []Store                `json:"stores"`
	Users                 []User                 `json:"users"`
	Budgets               []Budget               `json:"budgets"`
	Receipts              map[string]string      `json:"receipts"` // transaction id -> encoded image
	Language              string                 `json:"language"`
	DefaultCurrency       string                 `json:"defaultCurrency"`
	Currencies            CurrencyTable          `json:"currencies"`
}

// SliceValue returns the value of the named slice, for persistence.
func (s FinanceState) SliceValue(slice Slice) any {
	switch slice {
	case SliceTransactions:
		return s.Transactions
	case SliceTransactionTemplates:
		return s.TransactionTemplates
	case SliceRecurringTransactions:
		return s.RecurringTransactions
	case SliceCategories:
		return s.Categories
	case SliceStores:
		return s.Stores
	case SliceUsers:
		return s.Users
	case SliceBudgets:
		return s.Budgets
	case SliceReceipts:
		return s.Receipts
	case SliceLanguage:
		return s.Language
	case SliceDefaultCurrency:
		return s.DefaultCurrency
	default:
		return nil
	}
}

// Clone returns a deep, independent copy of the state.
func (s FinanceState) Clone() FinanceState {
	out := s
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.TransactionTemplates = append([]TransactionTemplate(nil), s.TransactionTemplates...)
	out.RecurringTransactions = append([]RecurringTransaction(nil), s.RecurringTransactions...)
	out.Categories = append([]string(nil), s.Categories...)
	out.Stores = append([]Store(nil), s.Stores...)
	out.Users = append([]User(nil), s.Users...)
	out.Budgets = append([]Budget(nil), s.Budgets...)
	out.Receipts = make(map[string]string, len(s.Receipts))
	for id, image := range s.Receipts {
		out.Receipts[id] = image
	}
	out.Currencies = make(CurrencyTable, len(s.Currencies))
	for code, currency := range s.Currencies {
		out.Currencies[code] = currency
	}
	return out
}

// DefaultState returns the built-in default FinanceState: seeded categories,
// stores and users, empty collections otherwise. Each call builds a fresh
// value, so callers may mutate the result freely.
func DefaultState() FinanceState {
	return FinanceState{
		Transactions:          []Transaction{},
		TransactionTemplates:  []TransactionTemplate{},
		RecurringTransactions: []RecurringTransaction{},
		Categories: []string{
			"Food", "Transport", "Entertainment", "Shopping", "Bills", "Health", "Other",
		},
		Stores: []Store{
			{ID: "store-1", Name: "Colruyt", Type: "Supermarket", Country: "BE"},
			{ID: "store-2", Name: "Delhaize", Type: "Supermarket", Country: "BE"},
			{ID: "store-3", Name: "Carrefour", Type: "Supermarket", Country: "BE"},
			{ID: "store-4", Name: "Aldi", Type: "DiscountStore", Country: "BE"},
			{ID: "store-5", Name: "Lidl", Type: "DiscountStore", Country: "BE"},
			{ID: "store-6", Name: "MediaMarkt", Type: "Electronics", Country: "BE"},
			{ID: "store-7", Name: "Kruidvat", Type: "Drugstore", Country: "BE"},
		},
		Users: []User{
			{ID: "user-1", Name: "Admin", Role: RoleAdmin},
			{ID: "user-2", Name: "User", Role: RoleUser},
		},
		Budgets:         []Budget{},
		Receipts:        map[string]string{},
		Language:        DefaultLanguage,
		DefaultCurrency: DefaultCurrencyCode,
		Currencies:      DefaultCurrencies(),
	}
}
