// Package auth contains the access-key authentication use case.
package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// IssueTokenInput represents the input for token issuance.
type IssueTokenInput struct {
	AccessKey string
}

// IssueTokenOutput represents the output of token issuance.
type IssueTokenOutput struct {
	Token string
	Role  entity.Role
}

// IssueTokenUseCase exchanges a pre-shared access key for a signed token.
// BudgetBook is single-owner: there are two keys, not a user table. The
// admin key also extends the user scope.
type IssueTokenUseCase struct {
	tokenService  adapter.TokenService
	accessKeyHash string
	adminKeyHash  string
}

// NewIssueTokenUseCase creates a new IssueTokenUseCase instance.
func NewIssueTokenUseCase(tokenService adapter.TokenService, accessKeyHash, adminKeyHash string) *IssueTokenUseCase {
	return &IssueTokenUseCase{
		tokenService:  tokenService,
		accessKeyHash: accessKeyHash,
		adminKeyHash:  adminKeyHash,
	}
}

// Execute validates the access key and issues a token for the matched role.
func (uc *IssueTokenUseCase) Execute(ctx context.Context, input IssueTokenInput) (*IssueTokenOutput, error) {
	role, ok := uc.matchRole(input.AccessKey)
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidAccessKey,
			"invalid access key",
			domainerror.ErrInvalidAccessKey,
		)
	}

	token, err := uc.tokenService.Generate(ctx, role)
	if err != nil {
		return nil, err
	}

	slog.Info("Access token issued", "role", string(role))

	return &IssueTokenOutput{
		Token: token,
		Role:  role,
	}, nil
}

// matchRole compares the key against the admin hash first so the admin key
// always yields the wider scope.
func (uc *IssueTokenUseCase) matchRole(key string) (entity.Role, bool) {
	if uc.adminKeyHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(uc.adminKeyHash), []byte(key)) == nil {
		return entity.RoleAdmin, true
	}
	if uc.accessKeyHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(uc.accessKeyHash), []byte(key)) == nil {
		return entity.RoleUser, true
	}
	return "", false
}
