package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/store"
)

// StateController serves read access to the finance state.
type StateController struct {
	store *store.Store
}

// NewStateController creates a new state controller instance.
func NewStateController(s *store.Store) *StateController {
	return &StateController{store: s}
}

// Get handles GET /state requests. The response is a consistent snapshot;
// concurrent dispatches never produce a half-applied view.
func (c *StateController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.State())
}
