package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

func TestSplitInvoiceCode(t *testing.T) {
	prefix, seq, err := domain.SplitInvoiceCode("RT015001")
	require.NoError(t, err)
	assert.Equal(t, "RT01", prefix)
	assert.Equal(t, 5001, seq)
}

func TestSplitInvoiceCodeZeroPadded(t *testing.T) {
	prefix, seq, err := domain.SplitInvoiceCode("IN010007")
	require.NoError(t, err)
	assert.Equal(t, "IN01", prefix)
	assert.Equal(t, 7, seq)
}

func TestSplitInvoiceCodeWrongLength(t *testing.T) {
	_, _, err := domain.SplitInvoiceCode("RT0150")
	assert.Error(t, err)

	_, _, err = domain.SplitInvoiceCode("RT01500123")
	assert.Error(t, err)
}

func TestSplitInvoiceCodeNonNumericSequence(t *testing.T) {
	_, _, err := domain.SplitInvoiceCode("RT01A001")
	assert.Error(t, err)
}

func TestFormatInvoiceCode(t *testing.T) {
	assert.Equal(t, "RT015001", domain.FormatInvoiceCode("RT01", 5001))
	assert.Equal(t, "IN010007", domain.FormatInvoiceCode("IN01", 7))
	assert.Equal(t, "IN019999", domain.FormatInvoiceCode("IN01", 9999))
}

func TestSplitFormatRoundTrip(t *testing.T) {
	prefix, seq, err := domain.SplitInvoiceCode("ZZ090042")
	require.NoError(t, err)
	assert.Equal(t, "ZZ090042", domain.FormatInvoiceCode(prefix, seq))
}
