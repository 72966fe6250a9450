package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as a US dollar string with thousands
// separators, e.g. 1234.5 -> "$1,234.50". Negative amounts render with a
// leading minus: "-$20.00".
func FormatCurrency(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatCurrencyOrBlank formats like FormatCurrency but renders zero as an
// empty string, matching how optional amounts appear on printed documents.
func FormatCurrencyOrBlank(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return FormatCurrency(amount)
}
