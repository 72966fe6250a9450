package services

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
)

// categoryService exposes the invoice category reference data. Invoice start
// advancement is not offered here; only a successful invoice generation moves
// a category's numbering forward.
type categoryService struct {
	BaseService
	repo portsrepo.CategoryRepositoryFacade
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// NewCategoryService creates the invoice category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{repo: repo}
}

// GetCategoryByCode retrieves one category.
func (s *categoryService) GetCategoryByCode(ctx context.Context, code int) (*domain.InvoiceCategory, error) {
	return s.repo.FindCategoryByCode(ctx, code)
}

// ListCategories retrieves all categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.InvoiceCategory, error) {
	return s.repo.ListCategories(ctx)
}
