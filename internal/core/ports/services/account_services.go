package services

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

// AccountReaderSvc defines read operations for customer accounts.
type AccountReaderSvc interface {
	GetAccountByNo(ctx context.Context, accountNo string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for customer accounts.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountNo string, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account service operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// ProviderSvcFacade defines operations for billing providers.
type ProviderSvcFacade interface {
	GetProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

// CategorySvcFacade defines operations for invoice categories.
type CategorySvcFacade interface {
	GetCategoryByCode(ctx context.Context, code int) (*domain.InvoiceCategory, error)
	ListCategories(ctx context.Context) ([]domain.InvoiceCategory, error)
}
