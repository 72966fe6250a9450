package services

import (
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/platform/config"
	"github.com/hasanqazi87/lab-site/internal/render"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer render.Renderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Provider = NewProviderService(repos.ProviderRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)

	container.Billing = NewBillingService(
		repos,
		renderer,
		WithExportDir(cfg.InvoiceExportDir),
	)

	return container
}
