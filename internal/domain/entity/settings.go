// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Currency describes one entry of the static currency table.
type Currency struct {
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// CurrencyTable maps currency codes to their display and conversion data.
// The table is configuration, not user data: it is never persisted and is
// always rebuilt from DefaultCurrencies.
type CurrencyTable map[string]Currency

// DefaultLanguage is the language used until the user picks one.
const DefaultLanguage = "en"

// DefaultCurrencyCode is the currency used until the user picks one.
const DefaultCurrencyCode = "EUR"

// DefaultCurrencies returns the built-in currency table.
func DefaultCurrencies() CurrencyTable {
	return CurrencyTable{
		"EUR": {Symbol: "€", Rate: decimal.NewFromInt(1)},
		"USD": {Symbol: "$", Rate: decimal.NewFromFloat(1.08)},
		"GBP": {Symbol: "£", Rate: decimal.NewFromFloat(0.85)},
	}
}
