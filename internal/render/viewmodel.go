package render

import (
	"github.com/shopspring/decimal"
)

// LabView carries the lab's own remit-to/contact details printed on every
// document. Sourced from the lab's reference account row.
type LabView struct {
	Name         string
	Addr1        string
	Addr2        string
	City         string
	State        string
	Zip          string
	Phone        string
	Fax          string
	Email        string
	ContactName  string
	ContactTitle string
	SAPAccountNo string
}

// TotalsLine is one subtotal/grand-total line of the register.
type TotalsLine struct {
	Sales       decimal.Decimal
	Tax         decimal.Decimal
	Adjustments decimal.Decimal
	Total       decimal.Decimal
}

// RegisterAccountLine is one included account's row of the invoice register.
type RegisterAccountLine struct {
	InvoiceNo   string
	Description string // "Name - #AccountNo"
	Email       string
	Sales       decimal.Decimal
	Tax         decimal.Decimal
	Adjustments decimal.Decimal
	Total       decimal.Decimal
}

// RegisterProviderSection groups the register rows of one provider, with a
// subtotal line for real providers.
type RegisterProviderSection struct {
	Name        string
	HasSubtotal bool // false for the direct-billed (no provider) section
	Accounts    []RegisterAccountLine
	Subtotal    TotalsLine
}

// RegisterInput is the deterministic input for the invoice register PDF.
type RegisterInput struct {
	CategoryDescription string
	PeriodLabel         string // e.g. "July 2026"
	Sections            []RegisterProviderSection
	Totals              TotalsLine
}

// JobLine is one job row on an invoice.
type JobLine struct {
	JobID       string
	EnterDate   string // MM/DD/YYYY or "N/A"
	ShipDate    string // MM/DD/YYYY or "N/A"
	PatientName string
	Price       decimal.Decimal
}

// AdjustmentLine is one adjustment row on an invoice or credit memo.
type AdjustmentLine struct {
	Kind        string
	Reference   string
	Description string
	Amount      decimal.Decimal
}

// PartyView carries the display/address fields of an account or provider.
type PartyView struct {
	Name  string
	Addr1 string
	Addr2 string
	City  string
	State string
	Zip   string
	Email string
}

// InvoiceView is the deterministic input for one account's invoice.
type InvoiceView struct {
	InvoiceNo          string
	AccountNo          string
	Account            PartyView
	Provider           *PartyView // nil for direct-billed accounts
	CustomerLedgerCode string
	Jobs               []JobLine
	Subtotal           decimal.Decimal
	TaxRatePct         string // e.g. "8.25", empty when untaxed
	Tax                decimal.Decimal
	Adjustments        []AdjustmentLine
	AdjustmentTotal    decimal.Decimal
	InvoiceTotal       decimal.Decimal
}

// InvoicesInput is the deterministic input for the combined invoices PDF and
// the per-account invoice files.
type InvoicesInput struct {
	Lab                 LabView
	CategoryDescription string
	PeriodLabel         string // "July 2026"
	InvoiceDate         string // MM/DD/YYYY
	Invoices            []InvoiceView
}

// SummaryRow is one job line of a provider's summary worksheet.
type SummaryRow struct {
	InvoiceNo   string
	AccountNo   string
	ShippedTo   string
	JobID       string
	PatientName string
	FrameStyle  string
	ShipDate    string
	LensPrice   decimal.Decimal
	FramePrice  decimal.Decimal
	TotalPrice  decimal.Decimal
}

// SummaryAdjustmentRow is one adjustment line of a provider's summary
// worksheet.
type SummaryAdjustmentRow struct {
	InvoiceNo   string
	AccountNo   string
	ShippedTo   string
	Reference   string
	Description string
	Kind        string
	Amount      decimal.Decimal
}

// SummarySheet is one provider's worksheet of the billing summary workbook.
type SummarySheet struct {
	SheetName          string
	ProviderName       string
	ProviderLedgerCode string
	Rows               []SummaryRow
	AdjustmentRows     []SummaryAdjustmentRow
	PatientCount       int
}

// SummaryInput is the deterministic input for the billing summary workbook.
type SummaryInput struct {
	Title       string // e.g. "July 2026 Billing Summary"
	PeriodLabel string
	Author      string
	Sheets      []SummarySheet
}

// CreditInput is the deterministic input for a credit memo request PDF.
type CreditInput struct {
	Lab         LabView
	AccountNo   string
	Date        string // e.g. "July 31, 2026"
	Adjustments []AdjustmentLine
}
