package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSumLineSubtotals(t *testing.T) {
	lines := []OrderLine{
		{Subtotal: decimal.RequireFromString("20.00")},
		{Subtotal: decimal.RequireFromString("5.00")},
		{Subtotal: decimal.RequireFromString("2.50")},
	}
	if got := SumLineSubtotals(lines); !got.Equal(decimal.RequireFromString("27.50")) {
		t.Errorf("sum = %s, want 27.50", got)
	}
}

func TestSumLineSubtotalsEmptyIsZero(t *testing.T) {
	if got := SumLineSubtotals(nil); !got.Equal(decimal.Zero) {
		t.Errorf("sum = %s, want 0", got)
	}
}

func TestComputeSubtotal(t *testing.T) {
	line := OrderLine{Cantidad: 3, PrecioUnitario: decimal.RequireFromString("19.99")}
	if got := line.ComputeSubtotal(); !got.Equal(decimal.RequireFromString("59.97")) {
		t.Errorf("subtotal = %s, want 59.97", got)
	}
}
