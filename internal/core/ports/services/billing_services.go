package services

import (
	"context"

	"github.com/hasanqazi87/lab-site/internal/dto"
)

// BillingRunCreator starts a billing run: fetch the period's jobs, join and
// aggregate them, snapshot the result, and return the review dataset with
// proposed invoice numbers.
type BillingRunCreator interface {
	CreateRun(ctx context.Context, req dto.CreateBillingRunRequest) (*dto.BillingRunReviewResponse, error)
}

// BillingRunReader rebuilds review data from an existing run snapshot.
type BillingRunReader interface {
	GetRun(ctx context.Context, runID string) (*dto.BillingRunReviewResponse, error)
	DiscardRun(ctx context.Context, runID string) error
}

// BillingDocumentGenerator produces the final documents for one category of a
// run, applying the operator's inclusion flags and adjustments against the
// run snapshot. GenerateInvoices is the only action that commits the
// category's next starting invoice code.
type BillingDocumentGenerator interface {
	GenerateRegister(ctx context.Context, runID string, req dto.GenerateRequest) (*dto.Document, error)
	GenerateInvoices(ctx context.Context, runID string, req dto.GenerateInvoicesRequest) (*dto.Document, error)
	GenerateSummary(ctx context.Context, runID string, req dto.GenerateRequest) (*dto.Document, error)
	GenerateCreditMemo(ctx context.Context, runID string, req dto.GenerateCreditRequest) (*dto.Document, error)
}

// BillingSvcFacade combines all billing run operations.
type BillingSvcFacade interface {
	BillingRunCreator
	BillingRunReader
	BillingDocumentGenerator
}
