package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hasanqazi87/lab-site/internal/utils"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"999.999", "$1,000.00"}, // rounds to two places before grouping
		{"-20", "-$20.00"},
		{"-1234.5", "-$1,234.50"},
		{"0.005", "$0.01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatCurrency(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFormatCurrencyOrBlank(t *testing.T) {
	assert.Equal(t, "", utils.FormatCurrencyOrBlank(decimal.Zero))
	assert.Equal(t, "$5.00", utils.FormatCurrencyOrBlank(decimal.RequireFromString("5")))
	assert.Equal(t, "-$20.00", utils.FormatCurrencyOrBlank(decimal.RequireFromString("-20")))
}
