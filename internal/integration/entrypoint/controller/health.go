package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storageHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storageHealthChecker func() bool) *HealthController {
	return &HealthController{
		storageHealthChecker: storageHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its storage backend.
func (h *HealthController) Check(c *gin.Context) {
	storageStatus := "disconnected"
	if h.storageHealthChecker != nil && h.storageHealthChecker() {
		storageStatus = "connected"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Storage:   storageStatus,
		Timestamp: time.Now().UTC(),
	})
}
