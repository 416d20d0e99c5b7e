// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial transaction in the BudgetBook system.
// Positive amounts are expenses; the amount is expressed in the default currency.
type Transaction struct {
	ID               string           `json:"id"`
	Date             time.Time        `json:"date"`
	Description      string           `json:"description"`
	Amount           decimal.Decimal  `json:"amount"`
	Category         string           `json:"category"`        // category name, not an id
	Store            string           `json:"store,omitempty"` // store id, optional
	User             string           `json:"user,omitempty"`  // user id, optional
	Notes            string           `json:"notes,omitempty"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
}

// TransactionTemplate prefills a new transaction with common values.
type TransactionTemplate struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Store    string          `json:"store,omitempty"`
}

// Frequency represents how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a stored transaction schedule. No automatic
// materialization happens in the store; NextDate is informational.
type RecurringTransaction struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Store     string          `json:"store,omitempty"`
	Frequency Frequency       `json:"frequency"`
	StartDate time.Time       `json:"startDate"`
	NextDate  time.Time       `json:"nextDate"`
}

// ReceiptDraft is the output of a receipt scan: a partial transaction the
// caller may apply via an update action. The store does not depend on how
// the draft was produced.
type ReceiptDraft struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description,omitempty"`
}
