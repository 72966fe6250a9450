package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/hasanqazi87/lab-site/internal/core/services"
)

func TestFilterIncludedPositional(t *testing.T) {
	rows := []domain.BillingRow{
		{JobRecord: domain.JobRecord{JobID: "J1"}},
		{JobRecord: domain.JobRecord{JobID: "J2"}},
	}

	kept, err := services.FilterIncluded(rows, []bool{true, false})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "J1", kept[0].JobID)
}

func TestFilterIncludedNilKeepsAll(t *testing.T) {
	rows := []domain.BillingRow{
		{JobRecord: domain.JobRecord{JobID: "J1"}},
	}
	kept, err := services.FilterIncluded(rows, nil)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestFilterIncludedIdempotent(t *testing.T) {
	rows := []domain.BillingRow{
		{JobRecord: domain.JobRecord{JobID: "J1"}},
		{JobRecord: domain.JobRecord{JobID: "J2"}},
		{JobRecord: domain.JobRecord{JobID: "J3"}},
	}

	once, err := services.FilterIncluded(rows, []bool{true, false, true})
	require.NoError(t, err)
	twice, err := services.FilterIncluded(once, []bool{true, true})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterIncludedLengthMismatch(t *testing.T) {
	rows := []domain.BillingRow{
		{JobRecord: domain.JobRecord{JobID: "J1"}},
	}
	_, err := services.FilterIncluded(rows, []bool{true, false})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
