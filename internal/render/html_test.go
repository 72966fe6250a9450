package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanqazi87/lab-site/internal/render"
)

// captureConverter records every HTML document handed to it and returns a
// fixed payload, standing in for Gotenberg.
type captureConverter struct {
	htmls []string
}

func (c *captureConverter) RenderHTML(_ context.Context, html string) ([]byte, error) {
	c.htmls = append(c.htmls, html)
	return []byte("%PDF-stub"), nil
}

func TestRenderRegisterHTML(t *testing.T) {
	conv := &captureConverter{}
	r := render.NewDocumentRenderer(conv)

	in := render.RegisterInput{
		CategoryDescription: "Routine",
		PeriodLabel:         "July 2026",
		Sections: []render.RegisterProviderSection{
			{
				Name:        "County Health",
				HasSubtotal: true,
				Accounts: []render.RegisterAccountLine{
					{
						InvoiceNo:   "IN015001",
						Description: "Eye Care One - #100",
						Email:       "billing@eyecareone.test",
						Sales:       decimal.RequireFromString("100.00"),
						Tax:         decimal.RequireFromString("8.25"),
						Total:       decimal.RequireFromString("108.25"),
					},
				},
				Subtotal: render.TotalsLine{
					Sales: decimal.RequireFromString("100.00"),
					Tax:   decimal.RequireFromString("8.25"),
					Total: decimal.RequireFromString("108.25"),
				},
			},
			{
				Name: "Direct Accounts",
				Accounts: []render.RegisterAccountLine{
					{
						InvoiceNo:   "IN015002",
						Description: "Main St Optical - #200",
						Sales:       decimal.RequireFromString("1234.50"),
						Total:       decimal.RequireFromString("1234.50"),
					},
				},
			},
		},
		Totals: render.TotalsLine{
			Sales: decimal.RequireFromString("1334.50"),
			Tax:   decimal.RequireFromString("8.25"),
			Total: decimal.RequireFromString("1342.75"),
		},
	}

	pdf, err := r.RenderRegister(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)

	require.Len(t, conv.htmls, 1)
	html := conv.htmls[0]
	assert.Contains(t, html, "Invoice Register")
	assert.Contains(t, html, "July 2026")
	assert.Contains(t, html, "IN015001")
	assert.Contains(t, html, "Eye Care One - #100")
	assert.Contains(t, html, "$1,234.50")
	assert.Contains(t, html, "$1,342.75")
	// only the provider section carries a subtotal row
	assert.Equal(t, 1, strings.Count(html, "Subtotal"))
}

func TestRenderInvoicesCombinedAndPerAccount(t *testing.T) {
	conv := &captureConverter{}
	r := render.NewDocumentRenderer(conv)

	provider := render.PartyView{Name: "County Health", Addr1: "1 Civic Plaza", City: "Springfield", State: "IL", Zip: "62701"}
	in := render.InvoicesInput{
		Lab: render.LabView{
			Name:  "Institute Optical Lab",
			Addr1: "10 Lab Way",
			City:  "Springfield",
			State: "IL",
			Zip:   "62701",
			Email: "lab@institute.test",
		},
		CategoryDescription: "Routine",
		PeriodLabel:         "July 2026",
		InvoiceDate:         "07/31/2026",
		Invoices: []render.InvoiceView{
			{
				InvoiceNo:  "IN015001",
				AccountNo:  "100",
				Account:    render.PartyView{Name: "Eye Care One"},
				Provider:   &provider,
				Jobs:       []render.JobLine{{JobID: "J1", EnterDate: "07/01/2026", ShipDate: "07/10/2026", PatientName: "Smith, Ann", Price: decimal.RequireFromString("100.00")}},
				Subtotal:   decimal.RequireFromString("100.00"),
				TaxRatePct: "8.25",
				Tax:        decimal.RequireFromString("8.25"),
				Adjustments: []render.AdjustmentLine{
					{Kind: "Credit", Reference: "CM-1", Description: "breakage", Amount: decimal.RequireFromString("-20.00")},
				},
				AdjustmentTotal: decimal.RequireFromString("-20.00"),
				InvoiceTotal:    decimal.RequireFromString("88.25"),
			},
			{
				InvoiceNo:    "IN015002",
				AccountNo:    "200",
				Account:      render.PartyView{Name: "Main St Optical", Addr1: "2 Main St", City: "Springfield", State: "IL", Zip: "62701"},
				Jobs:         []render.JobLine{{JobID: "J2", EnterDate: "N/A", ShipDate: "07/12/2026", PatientName: "Jones, Bob", Price: decimal.RequireFromString("50.00")}},
				Subtotal:     decimal.RequireFromString("50.00"),
				InvoiceTotal: decimal.RequireFromString("50.00"),
			},
		},
	}

	combined, perAccount, err := r.RenderInvoices(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), combined)
	require.Len(t, perAccount, 2)
	assert.Contains(t, perAccount, "100")
	assert.Contains(t, perAccount, "200")

	// one combined render plus one per account
	require.Len(t, conv.htmls, 3)

	combinedHTML := conv.htmls[0]
	assert.Contains(t, combinedHTML, "IN015001")
	assert.Contains(t, combinedHTML, "IN015002")
	assert.Contains(t, combinedHTML, "page-break")
	// provider-billed invoice addresses the provider, names the account
	assert.Contains(t, combinedHTML, "County Health")
	assert.Contains(t, combinedHTML, "For account Eye Care One - #100")
	// tax line only where a rate applies
	assert.Equal(t, 1, strings.Count(combinedHTML, "Sales tax (8.25%)"))
	assert.Contains(t, combinedHTML, "Credit CM-1")
	assert.Contains(t, combinedHTML, "-$20.00")
	assert.Contains(t, combinedHTML, "$88.25")

	singleHTML := conv.htmls[2]
	assert.Contains(t, singleHTML, "IN015002")
	assert.NotContains(t, singleHTML, "IN015001")
	assert.NotContains(t, singleHTML, "Sales tax")
}

func TestRenderCreditMemoHTML(t *testing.T) {
	conv := &captureConverter{}
	r := render.NewDocumentRenderer(conv)

	in := render.CreditInput{
		Lab:       render.LabView{Name: "Institute Optical Lab", ContactName: "Pat Doe", Email: "lab@institute.test", Phone: "555-0100"},
		AccountNo: "100",
		Date:      "July 31, 2026",
		Adjustments: []render.AdjustmentLine{
			{Kind: "Credit", Reference: "CM-1", Description: "breakage", Amount: decimal.RequireFromString("-20.00")},
		},
	}

	_, err := r.RenderCreditMemo(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, conv.htmls, 1)
	html := conv.htmls[0]
	assert.Contains(t, html, "Credit Memo Request")
	assert.Contains(t, html, "Account #100")
	assert.Contains(t, html, "July 31, 2026")
	assert.Contains(t, html, "-$20.00")
	assert.Contains(t, html, "Pat Doe")
}

