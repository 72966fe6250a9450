package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

// NormalizeAdjustments converts operator-entered adjustment lines to their
// signed domain form. The request carries raw positive magnitudes; the sign
// convention (Credit negative, Debit positive) is applied here, once.
func NormalizeAdjustments(reqs map[string][]dto.AdjustmentRequest) (map[string][]domain.Adjustment, error) {
	if len(reqs) == 0 {
		return map[string][]domain.Adjustment{}, nil
	}

	out := make(map[string][]domain.Adjustment, len(reqs))
	for acct, lines := range reqs {
		adjs := make([]domain.Adjustment, 0, len(lines))
		for _, line := range lines {
			kind := domain.AdjustmentKind(line.Kind)
			if kind != domain.Credit && kind != domain.Debit {
				return nil, fmt.Errorf("%w: adjustment kind %q for account %s", apperrors.ErrValidation, line.Kind, acct)
			}
			if line.Amount.IsZero() {
				return nil, fmt.Errorf("%w: zero adjustment amount for account %s", apperrors.ErrValidation, acct)
			}
			adjs = append(adjs, domain.NewAdjustment(kind, line.Reference, line.Description, line.Amount))
		}
		out[acct] = adjs
	}
	return out, nil
}

// AdjustedTotal applies an account's signed adjustment sum on top of its run
// total.
func AdjustedTotal(totals domain.RunTotals, adjs []domain.Adjustment) decimal.Decimal {
	return totals.Total.Add(domain.SumAdjustments(adjs))
}
