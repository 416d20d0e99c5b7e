// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/auth"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	issueTokenUseCase *auth.IssueTokenUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(issueTokenUseCase *auth.IssueTokenUseCase) *AuthController {
	return &AuthController{
		issueTokenUseCase: issueTokenUseCase,
	}
}

// Token handles POST /auth/token requests.
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.issueTokenUseCase.Execute(ctx.Request.Context(), auth.IssueTokenInput{
		AccessKey: req.AccessKey,
	})
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid access key",
				Code:  string(authErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to issue token",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		Token: output.Token,
		Role:  string(output.Role),
	})
}
