package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// init registers the invoicecode binding rule used by the billing DTOs: a
// 4-character prefix followed by a 4-digit sequence.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("invoicecode", func(fl validator.FieldLevel) bool {
			_, _, err := domain.SplitInvoiceCode(fl.Field().String())
			return err == nil
		})
	}
}
