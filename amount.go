package hostedpay

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with a comma decimal separator and at least
// two fractional digits. Callers round to two places first; longer fractions
// are emitted as-is rather than truncated.
//
//	FormatAmount(decimal.RequireFromString("10.5"))   // "10,50"
//	FormatAmount(decimal.RequireFromString("10.567")) // "10,567"
func FormatAmount(amount decimal.Decimal) string {
	whole, frac, _ := strings.Cut(amount.String(), ".")
	for len(frac) < 2 {
		frac += "0"
	}
	return whole + "," + frac
}
