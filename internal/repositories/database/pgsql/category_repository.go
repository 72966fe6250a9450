package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	"github.com/hasanqazi87/lab-site/internal/models"
)

const categoryColumns = `code, description, invoice_start, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for invoice categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.InvoiceCategory, error) {
	var m models.InvoiceCategory
	err := row.Scan(
		&m.Code,
		&m.Description,
		&m.InvoiceStart,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindCategoryByCode retrieves a category by its numeric code.
func (r *PgxCategoryRepository) FindCategoryByCode(ctx context.Context, code int) (*domain.InvoiceCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoice_categories WHERE code = $1;`, categoryColumns)

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %d: %w", code, err)
	}

	c := models.ToDomainInvoiceCategory(m)
	return &c, nil
}

// ListCategories retrieves all categories ordered by code.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.InvoiceCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoice_categories ORDER BY code;`, categoryColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var ms []models.InvoiceCategory
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return models.ToDomainInvoiceCategorySlice(ms), nil
}

// AdvanceInvoiceStart persists the category's next starting invoice code. Runs
// in its own transaction with the row locked so two overlapping generations
// cannot both read the old start.
func (r *PgxCategoryRepository) AdvanceInvoiceStart(ctx context.Context, code int, newStart string, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	var current string
	err = tx.QueryRow(ctx, `SELECT invoice_start FROM invoice_categories WHERE code = $1 FOR UPDATE;`, code).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock category %d: %w", code, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE invoice_categories
		SET invoice_start = $2, last_updated_at = $3, last_updated_by = $4
		WHERE code = $1;
	`, code, newStart, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to advance invoice start for category %d: %w", code, err)
	}

	return r.Commit(ctx, tx)
}
