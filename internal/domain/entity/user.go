// Package entity defines the core business entities for the domain layer.
package entity

// Role represents a user's role within the household.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a person transactions can be attributed to.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
