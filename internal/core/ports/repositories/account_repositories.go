package repositories

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// AccountReader defines read operations for customer accounts.
type AccountReader interface {
	// FindAccountByNo retrieves an account by its account number.
	FindAccountByNo(ctx context.Context, accountNo string) (*domain.Account, error)

	// FindAccountsByNos retrieves multiple accounts keyed by account number.
	// Missing accounts are simply absent from the map.
	FindAccountsByNos(ctx context.Context, accountNos []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by account number.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListAccountRefs retrieves the account-to-category-to-provider-to-tax-rate
	// mapping joined against fetched jobs during aggregation.
	ListAccountRefs(ctx context.Context) ([]domain.AccountRef, error)
}

// AccountWriter defines write operations for customer accounts.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
