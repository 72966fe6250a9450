package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
)

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates the read-only gateway into the production
// job-tracking database. It receives its own pool; the jobs database is a
// separate system from the reference database.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

// periodColumn maps the query-by selector onto a whitelisted column name. The
// selector never reaches the SQL text unmapped.
func periodColumn(queryBy domain.PeriodQueryBy) (string, error) {
	switch queryBy {
	case domain.QueryByShipDate:
		return "jd.ship_date", nil
	case domain.QueryByEnterDate:
		return "jd.enter_date", nil
	default:
		return "", fmt.Errorf("%w: unknown period selector %q", apperrors.ErrValidation, queryBy)
	}
}

// FetchJobs returns the billable jobs for a period (YYYY-MM). House accounts
// and non-positive net sales are filtered at the source.
func (r *PgxJobRepository) FetchJobs(ctx context.Context, queryBy domain.PeriodQueryBy, period string) ([]domain.JobRecord, error) {
	col, err := periodColumn(queryBy)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			jd.bill_customer_no,
			jd.job_id,
			jd.enter_date,
			jd.ship_date,
			COALESCE(jd.patient_last_name, '') || ', ' || COALESCE(jd.patient_first_name, '') AS patient_name,
			COALESCE(jd.frame_name, '') AS frame_name,
			COALESCE(jq.frame_item_no, '') AS frame_item_no,
			COALESCE(jq.name, '') AS frame_name_alt,
			COALESCE(jd.comment1, '') AS comment1,
			(SELECT COALESCE(SUM(ji.amt), 0) FROM job_items ji
			 WHERE ji.job_id = jd.job_id AND ji.item_type = 'L') AS lens_price,
			(SELECT COALESCE(SUM(ji.amt), 0) FROM job_items ji
			 WHERE ji.job_id = jd.job_id AND ji.item_type IN ('F', 'V')) AS frame_price,
			jd.job_net AS sales
		FROM job_details jd
		INNER JOIN jobs j ON jd.job_id = j.job_id
		INNER JOIN job_queries jq ON jd.job_id = jq.job_id
		WHERE to_char(%s, 'YYYY-MM') = $1
			AND jd.bill_customer_no != ALL($2)
			AND jd.job_net > 0;
	`, col)

	rows, err := r.Pool.Query(ctx, query, period, domain.ReservedAccountNos)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for period %s: %w", period, err)
	}
	defer rows.Close()

	var jobs []domain.JobRecord
	for rows.Next() {
		var j domain.JobRecord
		if err := rows.Scan(
			&j.AccountNo,
			&j.JobID,
			&j.EnterDate,
			&j.ShipDate,
			&j.PatientName,
			&j.FrameName,
			&j.FrameItemNo,
			&j.FrameNameAlt,
			&j.Comment,
			&j.LensPrice,
			&j.FramePrice,
			&j.Sales,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}
