package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/valueobject"
)

var oneHundred = decimal.NewFromInt(100)

// BudgetUtilizationInput represents the input for the budget utilization report.
type BudgetUtilizationInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// BudgetUtilizationItem is one budget record evaluated against the window's
// spend in its category.
type BudgetUtilizationItem struct {
	BudgetID   string          `json:"budgetId"`
	Category   string          `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage decimal.Decimal `json:"percentage"`
	OverBudget bool            `json:"overBudget"`
	Formatted  string          `json:"formatted"`
}

// BudgetUtilizationOutput represents the output of the budget utilization report.
type BudgetUtilizationOutput struct {
	Items []BudgetUtilizationItem `json:"items"`
}

// BudgetUtilizationUseCase evaluates every budget record against the spend
// in its category. Each record is evaluated independently, including several
// records pointing at the same category.
type BudgetUtilizationUseCase struct {
	store *store.Store
}

// NewBudgetUtilizationUseCase creates a new BudgetUtilizationUseCase instance.
func NewBudgetUtilizationUseCase(s *store.Store) *BudgetUtilizationUseCase {
	return &BudgetUtilizationUseCase{store: s}
}

// Execute computes the report over a consistent snapshot of the state.
func (uc *BudgetUtilizationUseCase) Execute(ctx context.Context, input BudgetUtilizationInput) (*BudgetUtilizationOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	state := uc.store.State()

	spentByCategory := make(map[string]decimal.Decimal)
	for _, tx := range state.Transactions {
		if !inWindow(tx.Date, *input.StartDate, *input.EndDate) {
			continue
		}
		// Expenses only: refunds and income never offset spend.
		if !tx.Amount.IsPositive() {
			continue
		}
		spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(tx.Amount)
	}

	items := make([]BudgetUtilizationItem, 0, len(state.Budgets))
	for _, budget := range state.Budgets {
		spent := spentByCategory[budget.CategoryID]

		item := BudgetUtilizationItem{
			BudgetID:  budget.ID,
			Category:  budget.CategoryID,
			Budget:    budget.Amount,
			Spent:     spent,
			Formatted: valueobject.FormatAmount(spent, state.DefaultCurrency, state.Currencies),
		}

		// A zero budget has no meaningful utilization ratio; it reads as
		// over budget as soon as anything is spent.
		if budget.Amount.IsPositive() {
			item.Percentage = spent.Div(budget.Amount).Mul(oneHundred)
			item.OverBudget = item.Percentage.GreaterThan(oneHundred)
		} else {
			item.Percentage = decimal.Zero
			item.OverBudget = spent.IsPositive()
		}

		items = append(items, item)
	}

	return &BudgetUtilizationOutput{Items: items}, nil
}
