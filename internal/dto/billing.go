package dto

import (
	"time"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillingRunRequest starts a billing run: fetch, aggregate and snapshot
// one period's jobs.
type CreateBillingRunRequest struct {
	QueryBy   string         `json:"queryBy" binding:"required,oneof=ship_date enter_date"`
	PeriodEnd string         `json:"periodEnd" binding:"required,datetime=2006-01-02"`
	// Optional per-category overrides of the starting invoice code; defaults
	// come from the stored InvoiceCategory rows.
	InvoiceStarts map[int]string `json:"invoiceStarts" binding:"omitempty,dive,invoicecode"`
}

// RunTotalsResponse carries the derived sales/tax/total triple, rounded to
// money precision.
type RunTotalsResponse struct {
	Sales decimal.Decimal `json:"sales"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// JobRowResponse is one job line in the review dataset.
type JobRowResponse struct {
	JobID       string          `json:"jobID"`
	EnterDate   string          `json:"enterDate"` // MM/DD/YYYY or "N/A"
	ShipDate    string          `json:"shipDate"`  // MM/DD/YYYY or "N/A"
	PatientName string          `json:"patientName"`
	FrameName   string          `json:"frameName"`
	LensPrice   decimal.Decimal `json:"lensPrice"`
	FramePrice  decimal.Decimal `json:"framePrice"`
	Sales       decimal.Decimal `json:"sales"`
}

// AccountReviewResponse is one account's slice of the review dataset, with
// its proposed invoice number.
type AccountReviewResponse struct {
	AccountNo         string            `json:"accountNo"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	LedgerCode        string            `json:"ledgerCode"`
	TaxRate           decimal.Decimal   `json:"taxRate"`
	ProposedInvoiceNo string            `json:"proposedInvoiceNo"`
	Totals            RunTotalsResponse `json:"totals"`
	Jobs              []JobRowResponse  `json:"jobs"`
}

// ProviderReviewResponse subtotals the accounts billed through one provider.
// ProviderID 0 collects accounts billed directly.
type ProviderReviewResponse struct {
	ProviderID int64                   `json:"providerID"`
	Name       string                  `json:"name"`
	Totals     RunTotalsResponse       `json:"totals"`
	Accounts   []AccountReviewResponse `json:"accounts"`
}

// CategoryReviewResponse is one invoice category's slice of the review
// dataset. LedgerCodesNeeded counts direct-billed accounts still missing an
// external ledger code, which the billing office must request before
// invoicing.
type CategoryReviewResponse struct {
	Code              int                      `json:"code"`
	Description       string                   `json:"description"`
	InvoiceStart      string                   `json:"invoiceStart"`
	HasProviders      bool                     `json:"hasProviders"`
	LedgerCodesNeeded int                      `json:"ledgerCodesNeeded"`
	Totals            RunTotalsResponse        `json:"totals"`
	Providers         []ProviderReviewResponse `json:"providers"`
}

// BillingRunReviewResponse is the full review payload for one billing run.
type BillingRunReviewResponse struct {
	RunID           string                   `json:"runID"`
	Period          string                   `json:"period"`
	QueryBy         string                   `json:"queryBy"`
	PeriodEnd       string                   `json:"periodEnd"`
	FetchedAt       time.Time                `json:"fetchedAt"`
	DroppedJobs     int                      `json:"droppedJobs"`
	DroppedAccounts []string                 `json:"droppedAccounts"`
	Totals          RunTotalsResponse        `json:"totals"`
	Categories      []CategoryReviewResponse `json:"categories"`
}

// AdjustmentRequest is one operator-entered credit/debit line for an account.
// Amount is the raw positive magnitude; the sign convention is applied on
// intake.
type AdjustmentRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=Credit Debit"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// GenerateRequest carries the operator's reviewed form data shared by all
// generation actions for one category of one run.
type GenerateRequest struct {
	CategoryCode int    `json:"categoryCode" binding:"required"`
	InvoiceDate  string `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	// Account number -> assigned invoice code. An account mapped to the empty
	// string is excluded from the documents entirely.
	InvoiceNos map[string]string `json:"invoiceNos" binding:"required,dive,omitempty,invoicecode"`
	// Account number -> one flag per snapshot job row, original order.
	// Accounts absent from the map keep all jobs included.
	Inclusions map[string][]bool `json:"inclusions"`
	// Account number -> adjustment lines. Accounts absent contribute zero.
	Adjustments map[string][]AdjustmentRequest `json:"adjustments"`
}

// GenerateInvoicesRequest additionally names the export subdirectory for the
// per-account invoice PDFs.
type GenerateInvoicesRequest struct {
	GenerateRequest
	SaveTo string `json:"saveTo" binding:"required"`
}

// GenerateCreditRequest additionally names the account the credit memo is for.
type GenerateCreditRequest struct {
	GenerateRequest
	AccountNo string `json:"accountNo" binding:"required"`
}

// Document is a rendered artifact returned as an attachment.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
	// SavedFiles lists per-account files written server-side (invoices only).
	SavedFiles []string
}

// ToRunTotalsResponse converts run totals to their response form.
func ToRunTotalsResponse(t domain.RunTotals) RunTotalsResponse {
	return RunTotalsResponse{Sales: t.Sales, Tax: t.Tax, Total: t.Total}
}

// ToJobRowResponse converts a billing row to its review response form.
func ToJobRowResponse(row domain.BillingRow) JobRowResponse {
	return JobRowResponse{
		JobID:       row.JobID,
		EnterDate:   FormatJobDate(row.EnterDate),
		ShipDate:    FormatJobDate(row.ShipDate),
		PatientName: row.PatientName,
		FrameName:   row.FrameName,
		LensPrice:   row.LensPrice,
		FramePrice:  row.FramePrice,
		Sales:       row.Sales,
	}
}

// FormatJobDate renders a nullable job date as MM/DD/YYYY, or "N/A".
func FormatJobDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("01/02/2006")
}
