// Package report contains derived read-model use cases over the finance
// state. Reports never mutate state; they fold over a snapshot.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/store"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/domain/valueobject"
)

// CategorySpendingInput represents the input for the category spending report.
type CategorySpendingInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CategorySpendingItem is the spend of one category within the window.
type CategorySpendingItem struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
	Count     int             `json:"count"`
}

// CategorySpendingOutput represents the output of the category spending report.
type CategorySpendingOutput struct {
	Items []CategorySpendingItem `json:"items"`
	Total decimal.Decimal        `json:"total"`
}

// CategorySpendingUseCase aggregates spend per category over a date window.
type CategorySpendingUseCase struct {
	store *store.Store
}

// NewCategorySpendingUseCase creates a new CategorySpendingUseCase instance.
func NewCategorySpendingUseCase(s *store.Store) *CategorySpendingUseCase {
	return &CategorySpendingUseCase{store: s}
}

// Execute computes the report over a consistent snapshot of the state.
func (uc *CategorySpendingUseCase) Execute(ctx context.Context, input CategorySpendingInput) (*CategorySpendingOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	state := uc.store.State()

	totals := make(map[string]*CategorySpendingItem)
	total := decimal.Zero

	for _, tx := range state.Transactions {
		if !inWindow(tx.Date, *input.StartDate, *input.EndDate) {
			continue
		}
		// Expenses only: refunds and income never offset spend.
		if !tx.Amount.IsPositive() {
			continue
		}

		item, ok := totals[tx.Category]
		if !ok {
			item = &CategorySpendingItem{Category: tx.Category}
			totals[tx.Category] = item
		}
		item.Amount = item.Amount.Add(tx.Amount)
		item.Count++
		total = total.Add(tx.Amount)
	}

	// Report categories in the state's category order so the output is
	// stable across calls; categories without spend are omitted.
	items := make([]CategorySpendingItem, 0, len(totals))
	for _, category := range state.Categories {
		if item, ok := totals[category]; ok {
			item.Formatted = valueobject.FormatAmount(item.Amount, state.DefaultCurrency, state.Currencies)
			items = append(items, *item)
			delete(totals, category)
		}
	}
	// Spend on categories that are no longer in the list still counts.
	for _, item := range totals {
		item.Formatted = valueobject.FormatAmount(item.Amount, state.DefaultCurrency, state.Currencies)
		items = append(items, *item)
	}

	return &CategorySpendingOutput{
		Items: items,
		Total: total,
	}, nil
}

// validateWindow checks a report date window.
func validateWindow(start, end *time.Time) error {
	if start == nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end == nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(*start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// inWindow reports whether t falls within [start, end], inclusive on both
// ends.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
