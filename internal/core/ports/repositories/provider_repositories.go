package repositories

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// ProviderRepositoryFacade defines operations for billing providers.
type ProviderRepositoryFacade interface {
	// FindProviderByID retrieves a provider by id.
	FindProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error)

	// FindProvidersByIDs retrieves multiple providers keyed by id. Missing
	// providers are simply absent from the map.
	FindProvidersByIDs(ctx context.Context, providerIDs []int64) (map[int64]domain.Provider, error)

	// ListProviders retrieves all providers ordered by id.
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}
