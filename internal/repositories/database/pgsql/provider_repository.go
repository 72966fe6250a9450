package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	"github.com/hasanqazi87/lab-site/internal/models"
)

const providerColumns = `provider_id, name, short_name, inv_addr1, inv_addr2, inv_city, inv_state, inv_zip, email, ledger_code, created_at, created_by, last_updated_at, last_updated_by`

type PgxProviderRepository struct {
	BaseRepository
}

// newPgxProviderRepository creates a new repository for provider reference data.
func newPgxProviderRepository(pool *pgxpool.Pool) portsrepo.ProviderRepositoryFacade {
	return &PgxProviderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProviderRepositoryFacade = (*PgxProviderRepository)(nil)

func scanProvider(row pgx.Row) (models.Provider, error) {
	var m models.Provider
	err := row.Scan(
		&m.ProviderID,
		&m.Name,
		&m.ShortName,
		&m.InvAddr1,
		&m.InvAddr2,
		&m.InvCity,
		&m.InvState,
		&m.InvZip,
		&m.Email,
		&m.LedgerCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindProviderByID retrieves a provider by id.
func (r *PgxProviderRepository) FindProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error) {
	query := fmt.Sprintf(`SELECT %s FROM providers WHERE provider_id = $1;`, providerColumns)

	m, err := scanProvider(r.Pool.QueryRow(ctx, query, providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider %d: %w", providerID, err)
	}

	p := models.ToDomainProvider(m)
	return &p, nil
}

// FindProvidersByIDs retrieves multiple providers keyed by id.
func (r *PgxProviderRepository) FindProvidersByIDs(ctx context.Context, providerIDs []int64) (map[int64]domain.Provider, error) {
	if len(providerIDs) == 0 {
		return map[int64]domain.Provider{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM providers WHERE provider_id = ANY($1);`, providerColumns)

	rows, err := r.Pool.Query(ctx, query, providerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers by ids: %w", err)
	}
	defer rows.Close()

	providers := make(map[int64]domain.Provider, len(providerIDs))
	for rows.Next() {
		m, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider row: %w", err)
		}
		providers[m.ProviderID] = models.ToDomainProvider(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provider rows: %w", err)
	}
	return providers, nil
}

// ListProviders retrieves all providers ordered by id.
func (r *PgxProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query := fmt.Sprintf(`SELECT %s FROM providers ORDER BY provider_id;`, providerColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer rows.Close()

	var ms []models.Provider
	for rows.Next() {
		m, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provider rows: %w", err)
	}
	return models.ToDomainProviderSlice(ms), nil
}
