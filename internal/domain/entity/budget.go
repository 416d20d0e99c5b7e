// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Budget sets a monthly spending limit for one category. The model allows
// several budget records to reference the same category; consumers evaluate
// each record independently.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"` // category name
	Amount     decimal.Decimal `json:"amount"`
}
