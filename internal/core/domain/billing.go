package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingRow is one job joined with its account reference data, with the
// per-row tax and total derived. Rows are the unit the run snapshot stores.
type BillingRow struct {
	JobRecord
	ProviderID   int64           `json:"providerID"`   // 0 = no provider
	CategoryCode int             `json:"categoryCode"` // invoice category code
	TaxRate      decimal.Decimal `json:"taxRate"`
	Tax          decimal.Decimal `json:"tax"`   // sales * tax_rate, unrounded
	Total        decimal.Decimal `json:"total"` // sales * (1 + tax_rate), unrounded
}

// RunTotals is the derived sales/tax/total triple attached per run to a
// category, provider or account. Invariant: Total = Sales + Tax. It is a
// separate value object keyed by entity id; reference entities are never
// mutated in place.
type RunTotals struct {
	Sales decimal.Decimal `json:"sales"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// AccountGroup is the ordered job list and run totals for one account.
type AccountGroup struct {
	AccountNo string       `json:"accountNo"`
	Totals    RunTotals    `json:"totals"`
	Jobs      []BillingRow `json:"jobs"`
}

// ProviderGroup nests the account groups billed through one provider.
// ProviderID 0 collects accounts billed directly.
type ProviderGroup struct {
	ProviderID int64          `json:"providerID"`
	Totals     RunTotals      `json:"totals"`
	Accounts   []AccountGroup `json:"accounts"`
}

// CategoryGroup nests the provider groups of one invoice category.
type CategoryGroup struct {
	CategoryCode int             `json:"categoryCode"`
	Totals       RunTotals       `json:"totals"`
	Providers    []ProviderGroup `json:"providers"`
}

// AccountCount returns the number of distinct accounts in the category, which
// is also the number of invoice numbers the category needs for the run.
func (g CategoryGroup) AccountCount() int {
	n := 0
	for _, p := range g.Providers {
		n += len(p.Accounts)
	}
	return n
}

// AccountNos returns the category's account numbers in grouping order. Invoice
// numbers are assigned in exactly this order.
func (g CategoryGroup) AccountNos() []string {
	nos := make([]string, 0, g.AccountCount())
	for _, p := range g.Providers {
		for _, a := range p.Accounts {
			nos = append(nos, a.AccountNo)
		}
	}
	return nos
}

// HasProviders reports whether any account in the category bills through a
// real provider.
func (g CategoryGroup) HasProviders() bool {
	for _, p := range g.Providers {
		if p.ProviderID != NoProviderID {
			return true
		}
	}
	return false
}

// BillingDataset is the grouped, totaled output of the aggregation engine for
// one run. DroppedJobs/DroppedAccounts report jobs whose account was absent
// from the reference set; they are excluded from billing but never hidden.
type BillingDataset struct {
	Categories      []CategoryGroup `json:"categories"`
	Totals          RunTotals       `json:"totals"`
	DroppedJobs     int             `json:"droppedJobs"`
	DroppedAccounts []string        `json:"droppedAccounts"`
}

// FindCategory returns the category group with the given code, or nil.
func (d *BillingDataset) FindCategory(code int) *CategoryGroup {
	for i := range d.Categories {
		if d.Categories[i].CategoryCode == code {
			return &d.Categories[i]
		}
	}
	return nil
}

// BillingRun is the cached snapshot of one period's joined, sorted job
// dataset. Immutable once written; generation actions re-read it instead of
// re-querying the source databases.
type BillingRun struct {
	RunID           string        `json:"runID"`
	Period          string        `json:"period"` // YYYY-MM
	QueryBy         PeriodQueryBy `json:"queryBy"`
	PeriodEnd       time.Time     `json:"periodEnd"` // weekend-adjusted end date
	FetchedAt       time.Time     `json:"fetchedAt"`
	Rows            []BillingRow  `json:"rows"` // aggregation sort order
	DroppedJobs     int           `json:"droppedJobs"`
	DroppedAccounts []string      `json:"droppedAccounts"`
	// InvoiceStarts carries the operator's per-category starting-code
	// overrides so review rebuilds propose the same numbers.
	InvoiceStarts map[int]string `json:"invoiceStarts,omitempty"`
}
