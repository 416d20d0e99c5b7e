package adapter

import (
	"context"
	"time"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// TokenClaims holds the validated claims of an access token.
type TokenClaims struct {
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService issues and validates the API access tokens guarding the HTTP
// surface. BudgetBook is single-owner: tokens carry a role scope, not an
// identity.
type TokenService interface {
	// Generate issues a signed access token carrying the given role.
	Generate(ctx context.Context, role entity.Role) (string, error)

	// Validate checks a token and returns its claims.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}
