package domain

import (
	"github.com/shopspring/decimal"
)

// AdjustmentKind discriminates manual correction line items.
type AdjustmentKind string

const (
	Credit AdjustmentKind = "Credit"
	Debit  AdjustmentKind = "Debit"
)

// Adjustment is a manual credit/debit correction tied to one account, applied
// after aggregation and before final totals. Amount is stored signed:
// negative for credits, positive for debits.
type Adjustment struct {
	Kind        AdjustmentKind  `json:"kind"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewAdjustment builds an Adjustment from a raw positive magnitude, applying
// the sign convention: Credit => -magnitude, Debit => +magnitude.
func NewAdjustment(kind AdjustmentKind, reference, description string, magnitude decimal.Decimal) Adjustment {
	amount := magnitude.Abs()
	if kind == Credit {
		amount = amount.Neg()
	}
	return Adjustment{
		Kind:        kind,
		Reference:   reference,
		Description: description,
		Amount:      amount,
	}
}

// SumAdjustments folds a list of signed adjustment amounts into one total.
// An empty list contributes zero.
func SumAdjustments(adjustments []Adjustment) decimal.Decimal {
	sum := decimal.Zero
	for _, adj := range adjustments {
		sum = sum.Add(adj.Amount)
	}
	return sum
}
