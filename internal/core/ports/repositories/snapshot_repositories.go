package repositories

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// SnapshotRepositoryFacade stores the per-run billing snapshot between the
// review step and the generation steps. Snapshots are immutable per run id;
// a new fetch creates a new run instead of overwriting a shared one.
type SnapshotRepositoryFacade interface {
	// SaveRun writes a run snapshot. Overwrites any prior snapshot with the
	// same run id (which, with uuid run ids, only happens on a retried save).
	SaveRun(ctx context.Context, run domain.BillingRun) error

	// FindRun reads a run snapshot. Returns apperrors.ErrSnapshotExpired when
	// the snapshot is gone (expired TTL or never written).
	FindRun(ctx context.Context, runID string) (*domain.BillingRun, error)

	// DeleteRun discards a run snapshot. Deleting an absent run is not an error.
	DeleteRun(ctx context.Context, runID string) error
}
