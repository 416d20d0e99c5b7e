// Package valueobject holds small immutable domain values and helpers.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// FormatAmount renders an amount with the symbol of the given currency code,
// e.g. "€45.00". An unknown code falls back to the bare two-decimal amount;
// readers must treat missing currency lookups as unknown, never as fatal.
func FormatAmount(amount decimal.Decimal, code string, table entity.CurrencyTable) string {
	currency, ok := table[code]
	if !ok {
		return amount.StringFixed(2)
	}
	return currency.Symbol + amount.StringFixed(2)
}

// Convert applies the table's conversion rate from the base currency to the
// given code. Unknown codes return the amount unchanged: the reducer performs
// no conversion, so this helper is strictly a read-time formatting aid.
func Convert(amount decimal.Decimal, code string, table entity.CurrencyTable) decimal.Decimal {
	currency, ok := table[code]
	if !ok {
		return amount
	}
	return amount.Mul(currency.Rate)
}
