package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/services"
)

func TestAllocateInvoiceNumbersConsecutive(t *testing.T) {
	assigned, err := services.AllocateInvoiceNumbers("RT015001", []string{"100", "200", "300"})
	require.NoError(t, err)

	assert.Equal(t, "RT015001", assigned["100"])
	assert.Equal(t, "RT015002", assigned["200"])
	assert.Equal(t, "RT015003", assigned["300"])
}

func TestAllocateInvoiceNumbersRejectsBadStart(t *testing.T) {
	_, err := services.AllocateInvoiceNumbers("RT01", []string{"100"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.AllocateInvoiceNumbers("RT01500X", []string{"100"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAllocateInvoiceNumbersExhaustion(t *testing.T) {
	_, err := services.AllocateInvoiceNumbers("RT019999", []string{"100", "200"})
	assert.ErrorIs(t, err, apperrors.ErrSequenceExhausted)

	// exactly at the ceiling is still fine
	assigned, err := services.AllocateInvoiceNumbers("RT019999", []string{"100"})
	require.NoError(t, err)
	assert.Equal(t, "RT019999", assigned["100"])
}

func TestNextInvoiceStartIsMaxPlusOne(t *testing.T) {
	next, err := services.NextInvoiceStart("RT015001", []string{"RT015001", "RT015003", "RT015002"})
	require.NoError(t, err)
	assert.Equal(t, "RT015004", next)
}

func TestNextInvoiceStartNoIssuedKeepsStart(t *testing.T) {
	next, err := services.NextInvoiceStart("RT015001", nil)
	require.NoError(t, err)
	assert.Equal(t, "RT015001", next)
}

func TestNextInvoiceStartPrefixMismatch(t *testing.T) {
	_, err := services.NextInvoiceStart("RT015001", []string{"IN015001"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNextInvoiceStartExhaustion(t *testing.T) {
	_, err := services.NextInvoiceStart("RT019998", []string{"RT019999"})
	assert.ErrorIs(t, err, apperrors.ErrSequenceExhausted)
}
