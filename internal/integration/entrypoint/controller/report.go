package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/report"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the derived report endpoints.
type ReportController struct {
	spendingUseCase    *report.CategorySpendingUseCase
	utilizationUseCase *report.BudgetUtilizationUseCase
	alertsUseCase      *report.OverBudgetAlertsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	spendingUseCase *report.CategorySpendingUseCase,
	utilizationUseCase *report.BudgetUtilizationUseCase,
	alertsUseCase *report.OverBudgetAlertsUseCase,
) *ReportController {
	return &ReportController{
		spendingUseCase:    spendingUseCase,
		utilizationUseCase: utilizationUseCase,
		alertsUseCase:      alertsUseCase,
	}
}

// CategorySpending handles GET /reports/category-spending requests.
func (c *ReportController) CategorySpending(ctx *gin.Context) {
	input := report.CategorySpendingInput{}
	input.StartDate = parseDateQuery(ctx, "startDate")
	input.EndDate = parseDateQuery(ctx, "endDate")

	output, err := c.spendingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// BudgetUtilization handles GET /reports/budget-utilization requests.
func (c *ReportController) BudgetUtilization(ctx *gin.Context) {
	input := report.BudgetUtilizationInput{}
	input.StartDate = parseDateQuery(ctx, "startDate")
	input.EndDate = parseDateQuery(ctx, "endDate")

	output, err := c.utilizationUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// OverBudgetAlerts handles GET /reports/alerts requests.
func (c *ReportController) OverBudgetAlerts(ctx *gin.Context) {
	output, err := c.alertsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// parseDateQuery reads a "2006-01-02" query parameter, nil when absent or
// unparseable. The use case reports missing bounds with proper error codes.
func parseDateQuery(ctx *gin.Context, name string) *time.Time {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil
	}
	// Make the end bound inclusive for the whole day.
	if name == "endDate" {
		date = date.Add(24*time.Hour - time.Nanosecond)
	}
	return &date
}

// respondReportError maps report errors onto HTTP responses.
func respondReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to build report",
	})
}
