package render

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hasanqazi87/lab-site/internal/utils"
)

// HTMLConverter turns an HTML document into a PDF. Satisfied by
// GotenbergClient.
type HTMLConverter interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Renderer produces the billing documents from fully resolved inputs. All
// selection, numbering and arithmetic happens before inputs reach it.
type Renderer interface {
	RenderRegister(ctx context.Context, in RegisterInput) ([]byte, error)
	// RenderInvoices returns the combined PDF plus one PDF per account,
	// keyed by account number.
	RenderInvoices(ctx context.Context, in InvoicesInput) ([]byte, map[string][]byte, error)
	RenderSummary(ctx context.Context, in SummaryInput) ([]byte, error)
	RenderCreditMemo(ctx context.Context, in CreditInput) ([]byte, error)
}

// DocumentRenderer renders PDFs through an HTML converter and workbooks with
// excelize.
type DocumentRenderer struct {
	converter HTMLConverter
}

var _ Renderer = (*DocumentRenderer)(nil)

// NewDocumentRenderer constructs a renderer over the given converter.
func NewDocumentRenderer(converter HTMLConverter) *DocumentRenderer {
	return &DocumentRenderer{converter: converter}
}

// RenderRegister produces the invoice register PDF.
func (r *DocumentRenderer) RenderRegister(ctx context.Context, in RegisterInput) ([]byte, error) {
	html, err := buildRegisterHTML(in)
	if err != nil {
		return nil, err
	}
	return r.converter.RenderHTML(ctx, html)
}

// RenderInvoices produces the combined invoices PDF and one PDF per account.
func (r *DocumentRenderer) RenderInvoices(ctx context.Context, in InvoicesInput) ([]byte, map[string][]byte, error) {
	combined, err := buildInvoicesHTML(in, in.Invoices)
	if err != nil {
		return nil, nil, err
	}
	combinedPDF, err := r.converter.RenderHTML(ctx, combined)
	if err != nil {
		return nil, nil, err
	}

	perAccount := make(map[string][]byte, len(in.Invoices))
	for _, inv := range in.Invoices {
		single, err := buildInvoicesHTML(in, []InvoiceView{inv})
		if err != nil {
			return nil, nil, err
		}
		pdf, err := r.converter.RenderHTML(ctx, single)
		if err != nil {
			return nil, nil, err
		}
		perAccount[inv.AccountNo] = pdf
	}
	return combinedPDF, perAccount, nil
}

// RenderSummary produces the billing summary workbook.
func (r *DocumentRenderer) RenderSummary(_ context.Context, in SummaryInput) ([]byte, error) {
	return buildSummaryWorkbook(in)
}

// RenderCreditMemo produces the credit memo request PDF.
func (r *DocumentRenderer) RenderCreditMemo(ctx context.Context, in CreditInput) ([]byte, error) {
	html, err := buildCreditHTML(in)
	if err != nil {
		return nil, err
	}
	return r.converter.RenderHTML(ctx, html)
}

func money(d decimal.Decimal) string {
	return utils.FormatCurrency(d)
}

func moneyOrBlank(d decimal.Decimal) string {
	return utils.FormatCurrencyOrBlank(d)
}
