package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/hasanqazi87/lab-site/internal/utils/accounting"
)

// Aggregator turns fetched jobs plus account reference data into the sorted,
// derived row set a billing run snapshots, and groups rows into the nested
// category/provider/account review structure.
type Aggregator struct {
	Rounding accounting.RoundingMode
}

// NewAggregator returns an aggregator with half-up money rounding.
func NewAggregator() *Aggregator {
	return &Aggregator{Rounding: accounting.RoundHalfUp}
}

// BuildRows inner-joins jobs against the account reference set and derives
// per-row tax and total. Jobs whose account has no reference row are dropped
// from billing; the drop count and the distinct unknown account numbers are
// reported, never hidden.
func (a *Aggregator) BuildRows(jobs []domain.JobRecord, refs []domain.AccountRef) ([]domain.BillingRow, int, []string) {
	refByAccount := make(map[string]domain.AccountRef, len(refs))
	for _, ref := range refs {
		refByAccount[ref.AccountNo] = ref
	}

	rows := make([]domain.BillingRow, 0, len(jobs))
	dropped := 0
	droppedSet := make(map[string]struct{})
	for _, job := range jobs {
		ref, ok := refByAccount[job.AccountNo]
		if !ok {
			dropped++
			droppedSet[job.AccountNo] = struct{}{}
			continue
		}
		rows = append(rows, a.deriveRow(job, ref))
	}

	droppedAccounts := make([]string, 0, len(droppedSet))
	for acct := range droppedSet {
		droppedAccounts = append(droppedAccounts, acct)
	}
	sort.Strings(droppedAccounts)

	sortRows(rows)
	return rows, dropped, droppedAccounts
}

// deriveRow attaches the reference fields and the derived tax and total. A
// reference row carries zero values where the source had no tax rate or
// provider, which is exactly the fill the derivation wants.
func (a *Aggregator) deriveRow(job domain.JobRecord, ref domain.AccountRef) domain.BillingRow {
	tax := job.Sales.Mul(ref.TaxRate)
	return domain.BillingRow{
		JobRecord:    job,
		ProviderID:   ref.ProviderID,
		CategoryCode: ref.CategoryCode,
		TaxRate:      ref.TaxRate,
		Tax:          tax,
		Total:        job.Sales.Add(tax),
	}
}

// sortRows orders rows by category, provider, account, ship date and patient
// name, with job id as the final tiebreaker so equal keys still sort
// deterministically. Rows without a ship date sort after dated ones.
func sortRows(rows []domain.BillingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.CategoryCode != b.CategoryCode {
			return a.CategoryCode < b.CategoryCode
		}
		if a.ProviderID != b.ProviderID {
			return a.ProviderID < b.ProviderID
		}
		if a.AccountNo != b.AccountNo {
			return a.AccountNo < b.AccountNo
		}
		if c := compareShipDates(a, b); c != 0 {
			return c < 0
		}
		if a.PatientName != b.PatientName {
			return a.PatientName < b.PatientName
		}
		return a.JobID < b.JobID
	})
}

func compareShipDates(a, b domain.BillingRow) int {
	switch {
	case a.ShipDate == nil && b.ShipDate == nil:
		return 0
	case a.ShipDate == nil:
		return 1
	case b.ShipDate == nil:
		return -1
	case a.ShipDate.Before(*b.ShipDate):
		return -1
	case a.ShipDate.After(*b.ShipDate):
		return 1
	default:
		return 0
	}
}

// Group builds the nested category/provider/account structure with totals at
// every level. Rows must already be in aggregation sort order; grouping is a
// single pass over adjacent runs.
func (a *Aggregator) Group(rows []domain.BillingRow, droppedJobs int, droppedAccounts []string) domain.BillingDataset {
	dataset := domain.BillingDataset{
		DroppedJobs:     droppedJobs,
		DroppedAccounts: droppedAccounts,
	}

	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].CategoryCode == rows[i].CategoryCode {
			j++
		}
		dataset.Categories = append(dataset.Categories, a.groupCategory(rows[i:j]))
		i = j
	}

	var sales, tax decimal.Decimal
	for _, row := range rows {
		sales = sales.Add(row.Sales)
		tax = tax.Add(row.Tax)
	}
	dataset.Totals = a.totals(sales, tax)
	return dataset
}

func (a *Aggregator) groupCategory(rows []domain.BillingRow) domain.CategoryGroup {
	group := domain.CategoryGroup{CategoryCode: rows[0].CategoryCode}

	var sales, tax decimal.Decimal
	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].ProviderID == rows[i].ProviderID {
			j++
		}
		group.Providers = append(group.Providers, a.groupProvider(rows[i:j]))
		i = j
	}
	for _, row := range rows {
		sales = sales.Add(row.Sales)
		tax = tax.Add(row.Tax)
	}
	group.Totals = a.totals(sales, tax)
	return group
}

func (a *Aggregator) groupProvider(rows []domain.BillingRow) domain.ProviderGroup {
	group := domain.ProviderGroup{ProviderID: rows[0].ProviderID}

	var sales, tax decimal.Decimal
	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].AccountNo == rows[i].AccountNo {
			j++
		}
		group.Accounts = append(group.Accounts, a.groupAccount(rows[i:j]))
		i = j
	}
	for _, row := range rows {
		sales = sales.Add(row.Sales)
		tax = tax.Add(row.Tax)
	}
	group.Totals = a.totals(sales, tax)
	return group
}

func (a *Aggregator) groupAccount(rows []domain.BillingRow) domain.AccountGroup {
	group := domain.AccountGroup{
		AccountNo: rows[0].AccountNo,
		Jobs:      rows,
	}
	var sales, tax decimal.Decimal
	for _, row := range rows {
		sales = sales.Add(row.Sales)
		tax = tax.Add(row.Tax)
	}
	group.Totals = a.totals(sales, tax)
	return group
}

// totals rounds the summed sales and tax to money precision and derives the
// total from the rounded parts, so sales + tax == total holds at display
// precision.
func (a *Aggregator) totals(sales, tax decimal.Decimal) domain.RunTotals {
	roundedSales := accounting.Round(sales, accounting.MoneyPlaces, a.Rounding)
	roundedTax := accounting.Round(tax, accounting.MoneyPlaces, a.Rounding)
	return domain.RunTotals{
		Sales: roundedSales,
		Tax:   roundedTax,
		Total: roundedSales.Add(roundedTax),
	}
}
