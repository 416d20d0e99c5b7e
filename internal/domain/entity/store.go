// Package entity defines the core business entities for the domain layer.
package entity

// DefaultStoreType is the store type used when none is provided.
const DefaultStoreType = "Other"

// DefaultStoreCountry is the country code used when none is provided.
const DefaultStoreCountry = "BE"

// Store represents a merchant where transactions take place.
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Country string `json:"country"`
}
