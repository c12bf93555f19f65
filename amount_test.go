package hostedpay

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		amount decimal.Decimal
		want   string
	}{
		"one fractional digit":   {decimal.NewFromFloat(10.5), "10,50"},
		"two zero digits":        {decimal.RequireFromString("10.00"), "10,00"},
		"integer":                {decimal.NewFromInt(7), "7,00"},
		"two digits":             {decimal.RequireFromString("0.24"), "0,24"},
		"three digits untouched": {decimal.RequireFromString("10.567"), "10,567"},
		"negative":               {decimal.RequireFromString("-1.5"), "-1,50"},
		"zero":                   {decimal.Zero, "0,00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := FormatAmount(tt.amount); got != tt.want {
				t.Fatalf("FormatAmount(%s) = %q want %q", tt.amount, got, tt.want)
			}
		})
	}
}
