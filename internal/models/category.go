package models

import (
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// InvoiceCategory mirrors a row of the invoice_categories reference table.
type InvoiceCategory struct {
	Code         int    `db:"code"`
	Description  string `db:"description"`
	InvoiceStart string `db:"invoice_start"`
	AuditFields
}

// ToDomainInvoiceCategory converts a row back to the domain entity.
func ToDomainInvoiceCategory(m InvoiceCategory) domain.InvoiceCategory {
	return domain.InvoiceCategory{
		Code:         m.Code,
		Description:  m.Description,
		InvoiceStart: m.InvoiceStart,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceCategorySlice converts a slice of category rows to domain entities.
func ToDomainInvoiceCategorySlice(ms []InvoiceCategory) []domain.InvoiceCategory {
	ds := make([]domain.InvoiceCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceCategory(m)
	}
	return ds
}
