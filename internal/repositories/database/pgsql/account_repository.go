package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	"github.com/hasanqazi87/lab-site/internal/models"
)

const accountColumns = `account_no, name, short_name, inv_addr1, inv_addr2, inv_city, inv_state, inv_zip, phone, fax_no, email, contact_name, contact_title, tax_rate, tax_exemption, provider_id, ledger_code, category_code, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account reference data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNo,
		&m.Name,
		&m.ShortName,
		&m.InvAddr1,
		&m.InvAddr2,
		&m.InvCity,
		&m.InvState,
		&m.InvZip,
		&m.Phone,
		&m.FaxNo,
		&m.Email,
		&m.ContactName,
		&m.ContactTitle,
		&m.TaxRate,
		&m.TaxExemption,
		&m.ProviderID,
		&m.LedgerCode,
		&m.CategoryCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByNo retrieves an account by its account number.
func (r *PgxAccountRepository) FindAccountByNo(ctx context.Context, accountNo string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE account_no = $1;`, accountColumns)

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountNo, err)
	}

	acc := models.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByNos retrieves multiple accounts keyed by account number.
func (r *PgxAccountRepository) FindAccountsByNos(ctx context.Context, accountNos []string) (map[string]domain.Account, error) {
	if len(accountNos) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE account_no = ANY($1);`, accountColumns)

	rows, err := r.Pool.Query(ctx, query, accountNos)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by numbers: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountNos))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[m.AccountNo] = models.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts ORDER BY account_no LIMIT $1 OFFSET $2;`, accountColumns)

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return models.ToDomainAccountSlice(ms), nil
}

// ListAccountRefs retrieves the slim account/provider/category/tax-rate
// mapping joined against fetched jobs during aggregation.
func (r *PgxAccountRepository) ListAccountRefs(ctx context.Context) ([]domain.AccountRef, error) {
	query := `SELECT account_no, provider_id, category_code, tax_rate FROM accounts;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account refs: %w", err)
	}
	defer rows.Close()

	var refs []domain.AccountRef
	for rows.Next() {
		var ref domain.AccountRef
		if err := rows.Scan(&ref.AccountNo, &ref.ProviderID, &ref.CategoryCode, &ref.TaxRate); err != nil {
			return nil, fmt.Errorf("failed to scan account ref row: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account ref rows: %w", err)
	}
	return refs, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := models.ToModelAccount(account)

	query := fmt.Sprintf(`
		INSERT INTO accounts (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`, accountColumns)

	_, err := r.Pool.Exec(ctx, query,
		m.AccountNo,
		m.Name,
		m.ShortName,
		m.InvAddr1,
		m.InvAddr2,
		m.InvCity,
		m.InvState,
		m.InvZip,
		m.Phone,
		m.FaxNo,
		m.Email,
		m.ContactName,
		m.ContactTitle,
		m.TaxRate,
		m.TaxExemption,
		m.ProviderID,
		m.LedgerCode,
		m.CategoryCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, m.AccountNo)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountNo, err)
	}
	return nil
}

// UpdateAccount updates mutable fields of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := models.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, short_name = $3, inv_addr1 = $4, inv_addr2 = $5, inv_city = $6, inv_state = $7, inv_zip = $8,
			phone = $9, fax_no = $10, email = $11, contact_name = $12, contact_title = $13,
			tax_rate = $14, tax_exemption = $15, provider_id = $16, ledger_code = $17, category_code = $18,
			last_updated_at = $19, last_updated_by = $20
		WHERE account_no = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.AccountNo,
		m.Name,
		m.ShortName,
		m.InvAddr1,
		m.InvAddr2,
		m.InvCity,
		m.InvState,
		m.InvZip,
		m.Phone,
		m.FaxNo,
		m.Email,
		m.ContactName,
		m.ContactTitle,
		m.TaxRate,
		m.TaxExemption,
		m.ProviderID,
		m.LedgerCode,
		m.CategoryCode,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountNo, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
