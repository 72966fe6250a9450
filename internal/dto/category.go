package dto

import (
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// CategoryResponse is the transport form of an invoice category.
type CategoryResponse struct {
	Code         int    `json:"code"`
	Description  string `json:"description"`
	InvoiceStart string `json:"invoiceStart"`
}

// ToCategoryResponse converts a domain category to its response form.
func ToCategoryResponse(c domain.InvoiceCategory) CategoryResponse {
	return CategoryResponse{
		Code:         c.Code,
		Description:  c.Description,
		InvoiceStart: c.InvoiceStart,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.InvoiceCategory) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToCategoryResponse(c))
	}
	return responses
}
