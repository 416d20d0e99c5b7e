package report

import (
	"context"
	"time"
)

// OverBudgetAlert flags one budget record exceeded in the current month.
type OverBudgetAlert struct {
	BudgetID   string `json:"budgetId"`
	Category   string `json:"category"`
	Percentage string `json:"percentage"`
	Spent      string `json:"spent"`
}

// OverBudgetAlertsOutput represents the output of the over-budget alerts report.
type OverBudgetAlertsOutput struct {
	Alerts []OverBudgetAlert `json:"alerts"`
	Month  string            `json:"month"`
}

// OverBudgetAlertsUseCase lists the budgets exceeded in the calendar month
// containing now.
type OverBudgetAlertsUseCase struct {
	utilization *BudgetUtilizationUseCase
	now         func() time.Time
}

// NewOverBudgetAlertsUseCase creates a new OverBudgetAlertsUseCase instance.
func NewOverBudgetAlertsUseCase(utilization *BudgetUtilizationUseCase) *OverBudgetAlertsUseCase {
	return &OverBudgetAlertsUseCase{
		utilization: utilization,
		now:         time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (uc *OverBudgetAlertsUseCase) WithNow(now func() time.Time) *OverBudgetAlertsUseCase {
	uc.now = now
	return uc
}

// Execute evaluates the current month and returns only the exceeded budgets.
func (uc *OverBudgetAlertsUseCase) Execute(ctx context.Context) (*OverBudgetAlertsOutput, error) {
	start, end := monthWindow(uc.now().UTC())

	result, err := uc.utilization.Execute(ctx, BudgetUtilizationInput{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	alerts := make([]OverBudgetAlert, 0)
	for _, item := range result.Items {
		if !item.OverBudget {
			continue
		}
		alerts = append(alerts, OverBudgetAlert{
			BudgetID:   item.BudgetID,
			Category:   item.Category,
			Percentage: item.Percentage.StringFixed(1),
			Spent:      item.Formatted,
		})
	}

	return &OverBudgetAlertsOutput{
		Alerts: alerts,
		Month:  start.Format("2006-01"),
	}, nil
}

// monthWindow returns the inclusive bounds of the calendar month holding t.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
