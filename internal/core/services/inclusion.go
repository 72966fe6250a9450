package services

import (
	"fmt"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// FilterIncluded applies the operator's per-job inclusion flags to one
// account's snapshot rows. Flags are positional against the snapshot order;
// a flag list whose length disagrees with the row count is rejected rather
// than guessed at. A nil flag list keeps every row.
func FilterIncluded(rows []domain.BillingRow, flags []bool) ([]domain.BillingRow, error) {
	if flags == nil {
		return rows, nil
	}
	if len(flags) != len(rows) {
		return nil, fmt.Errorf("%w: %d inclusion flags for %d jobs", apperrors.ErrValidation, len(flags), len(rows))
	}

	kept := make([]domain.BillingRow, 0, len(rows))
	for i, row := range rows {
		if flags[i] {
			kept = append(kept, row)
		}
	}
	return kept, nil
}
