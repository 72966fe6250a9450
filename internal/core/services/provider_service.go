package services

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
)

// providerService exposes the provider reference data.
type providerService struct {
	BaseService
	repo portsrepo.ProviderRepositoryFacade
}

var _ portssvc.ProviderSvcFacade = (*providerService)(nil)

// NewProviderService creates the provider reference service.
func NewProviderService(repo portsrepo.ProviderRepositoryFacade) portssvc.ProviderSvcFacade {
	return &providerService{repo: repo}
}

// GetProviderByID retrieves one provider.
func (s *providerService) GetProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error) {
	return s.repo.FindProviderByID(ctx, providerID)
}

// ListProviders retrieves all providers.
func (s *providerService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.repo.ListProviders(ctx)
}
