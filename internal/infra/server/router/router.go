// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	dispatchController *controller.DispatchController
	stateController    *controller.StateController
	reportController   *controller.ReportController
	backupController   *controller.BackupController
	receiptController  *controller.ReceiptController
	csvController      *controller.CSVController
	tokenRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	dispatchController *controller.DispatchController,
	stateController *controller.StateController,
	reportController *controller.ReportController,
	backupController *controller.BackupController,
	receiptController *controller.ReceiptController,
	csvController *controller.CSVController,
	tokenRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		dispatchController: dispatchController,
		stateController:    stateController,
		reportController:   reportController,
		backupController:   backupController,
		receiptController:  receiptController,
		csvController:      csvController,
		tokenRateLimiter:   tokenRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.tokenRateLimiter != nil {
			v1.POST("/auth/token", r.tokenRateLimiter.Middleware(), r.authController.Token)
		}

		if r.authMiddleware == nil {
			return
		}

		authed := v1.Group("")
		authed.Use(r.authMiddleware.Authenticate())
		{
			authed.GET("/state", r.stateController.Get)
			authed.POST("/dispatch", r.dispatchController.Dispatch)

			reports := authed.Group("/reports")
			{
				reports.GET("/category-spending", r.reportController.CategorySpending)
				reports.GET("/budget-utilization", r.reportController.BudgetUtilization)
				reports.GET("/alerts", r.reportController.OverBudgetAlerts)
			}

			authed.GET("/backup", r.backupController.Download)
			authed.POST("/backup/restore", r.backupController.Restore)
			authed.POST("/backup/email", r.backupController.Email)
			authed.POST("/reset", r.authMiddleware.RequireAdmin(), r.backupController.Reset)

			if r.receiptController != nil {
				authed.POST("/receipts/scan", r.receiptController.Scan)
			}

			authed.GET("/transactions/export", r.csvController.Export)
			authed.POST("/transactions/import", r.csvController.Import)
		}
	}
}
