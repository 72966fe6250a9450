package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/hasanqazi87/lab-site/internal/core/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

func TestNormalizeAdjustmentsSignConvention(t *testing.T) {
	adjs, err := services.NormalizeAdjustments(map[string][]dto.AdjustmentRequest{
		"100": {
			{Kind: "Credit", Reference: "CM-1", Description: "breakage", Amount: dec("20.00")},
			{Kind: "Debit", Reference: "DM-1", Description: "redo fee", Amount: dec("5.00")},
			// a credit entered with a negative magnitude still lands negative
			{Kind: "Credit", Reference: "CM-2", Description: "goodwill", Amount: dec("-3.00")},
		},
	})
	require.NoError(t, err)

	lines := adjs["100"]
	require.Len(t, lines, 3)
	assert.True(t, lines[0].Amount.Equal(dec("-20.00")))
	assert.True(t, lines[1].Amount.Equal(dec("5.00")))
	assert.True(t, lines[2].Amount.Equal(dec("-3.00")))

	// 162.38 - 20 + 5 - 3 = 144.38
	total := services.AdjustedTotal(domain.RunTotals{Total: dec("162.38")}, lines)
	assert.True(t, total.Equal(dec("144.38")), "got %s", total)
}

func TestNormalizeAdjustmentsRejectsBadInput(t *testing.T) {
	_, err := services.NormalizeAdjustments(map[string][]dto.AdjustmentRequest{
		"100": {{Kind: "Refund", Amount: dec("1.00")}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.NormalizeAdjustments(map[string][]dto.AdjustmentRequest{
		"100": {{Kind: "Credit", Amount: dec("0")}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSumAdjustmentsEmptyIsZero(t *testing.T) {
	assert.True(t, domain.SumAdjustments(nil).IsZero())
}
