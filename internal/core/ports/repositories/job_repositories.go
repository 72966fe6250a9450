package repositories

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// JobRepositoryFacade defines the read-only gateway into the production
// job-tracking database. Queries are synchronous; a failure aborts the
// request (no retry policy).
type JobRepositoryFacade interface {
	// FetchJobs returns the billable jobs for a period (YYYY-MM), selected by
	// ship date or enter date, with net sales > 0 and reserved house accounts
	// excluded.
	FetchJobs(ctx context.Context, queryBy domain.PeriodQueryBy, period string) ([]domain.JobRecord, error)
}
