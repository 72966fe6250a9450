package domain

import (
	"github.com/shopspring/decimal"
)

// LabAccountNo is the account number of the lab's own reference row. It holds
// the remit-to address and contact info printed on every invoice, and it must
// exist before a billing run can start.
const LabAccountNo = "ici"

// NoProviderID is the sentinel provider id for accounts billed directly,
// without an intermediary provider.
const NoProviderID int64 = 0

// Account is a billable customer entity from the account-reference database.
// Read-only during a billing run; per-run derived totals live in RunTotals,
// never on the entity itself.
type Account struct {
	AccountNo    string          `json:"accountNo"` // Primary key
	Name         string          `json:"name"`
	ShortName    string          `json:"shortName"`
	InvAddr1     string          `json:"invAddr1"`
	InvAddr2     string          `json:"invAddr2"`
	InvCity      string          `json:"invCity"`
	InvState     string          `json:"invState"`
	InvZip       string          `json:"invZip"`
	Phone        string          `json:"phone"`
	FaxNo        string          `json:"faxNo"`
	Email        string          `json:"email"`
	ContactName  string          `json:"contactName"`
	ContactTitle string          `json:"contactTitle"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxExemption string          `json:"taxExemption"`
	ProviderID   int64           `json:"providerID"`   // 0 = no provider
	LedgerCode   string          `json:"ledgerCode"`   // external ledger ("macola") customer code
	CategoryCode int             `json:"categoryCode"` // FK -> invoice_categories.code
	AuditFields
}

// DisplayName returns the short name when set, falling back to the full name.
func (a Account) DisplayName() string {
	if a.ShortName != "" {
		return a.ShortName
	}
	return a.Name
}

// AccountRef is the account-to-category-to-provider-to-tax-rate mapping row
// joined against fetched jobs during aggregation.
type AccountRef struct {
	AccountNo    string          `json:"accountNo"`
	ProviderID   int64           `json:"providerID"`
	CategoryCode int             `json:"categoryCode"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}
