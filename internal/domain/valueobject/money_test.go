package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

func TestFormatAmount(t *testing.T) {
	table := entity.DefaultCurrencies()

	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"euro", "45", "EUR", "€45.00"},
		{"dollar", "12.5", "USD", "$12.50"},
		{"pound", "3.333", "GBP", "£3.33"},
		{"unknown code falls back to the bare amount", "45", "XXX", "45.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			if got := FormatAmount(amount, tt.code, table); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	table := entity.DefaultCurrencies()
	amount := decimal.NewFromInt(100)

	if got := Convert(amount, "USD", table); !got.Equal(decimal.NewFromInt(108)) {
		t.Errorf("expected 108, got %s", got)
	}
	if got := Convert(amount, "EUR", table); !got.Equal(amount) {
		t.Errorf("expected the base amount, got %s", got)
	}
	if got := Convert(amount, "XXX", table); !got.Equal(amount) {
		t.Errorf("expected unknown codes to pass through, got %s", got)
	}
}
