package repositories

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// CategoryRepositoryFacade defines operations for invoice categories.
type CategoryRepositoryFacade interface {
	// FindCategoryByCode retrieves a category by its numeric code.
	FindCategoryByCode(ctx context.Context, code int) (*domain.InvoiceCategory, error)

	// ListCategories retrieves all categories ordered by code.
	ListCategories(ctx context.Context) ([]domain.InvoiceCategory, error)

	// AdvanceInvoiceStart persists the category's next starting invoice code.
	// This is the one externally visible write the billing core performs; it
	// must happen exactly once per successful invoice generation.
	AdvanceInvoiceStart(ctx context.Context, code int, newStart string, updatedBy string) error
}
