package accounting

import (
	"github.com/shopspring/decimal"
)

// RoundingMode selects the decimal rounding rule applied to money amounts.
// It is passed explicitly into the aggregation and ledger components rather
// than living in ambient state, so results stay reproducible.
type RoundingMode int

const (
	// RoundHalfUp rounds ties away from zero (0.125 -> 0.13, -0.125 -> -0.13).
	// This is the billing default.
	RoundHalfUp RoundingMode = iota
	// RoundHalfEven rounds ties to the even neighbor (banker's rounding).
	RoundHalfEven
)

// MoneyPlaces is the number of decimal places money amounts are rounded to.
const MoneyPlaces int32 = 2

// Round rounds an amount to the given number of places under the mode.
func Round(amount decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundHalfEven:
		return amount.RoundBank(places)
	default:
		return amount.Round(places)
	}
}

// RoundMoney rounds an amount to money precision under the mode.
func RoundMoney(amount decimal.Decimal, mode RoundingMode) decimal.Decimal {
	return Round(amount, MoneyPlaces, mode)
}

// DeriveTax computes the tax on a net sales amount, unrounded.
func DeriveTax(sales, taxRate decimal.Decimal) decimal.Decimal {
	return sales.Mul(taxRate)
}

// DeriveTotal computes sales gross of tax, unrounded.
func DeriveTotal(sales, taxRate decimal.Decimal) decimal.Decimal {
	return sales.Mul(decimal.NewFromInt(1).Add(taxRate))
}
