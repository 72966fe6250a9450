package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
	"github.com/hasanqazi87/lab-site/internal/render"
	"github.com/hasanqazi87/lab-site/internal/utils/accounting"
)

// billingService orchestrates billing runs: fetch and aggregate a period's
// jobs, snapshot the result, and generate the review documents against that
// snapshot.
type billingService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	providerRepo portsrepo.ProviderRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	jobRepo      portsrepo.JobRepositoryFacade
	snapshotRepo portsrepo.SnapshotRepositoryFacade
	renderer     render.Renderer
	aggregator   *Aggregator
	exportDir    string
	now          func() time.Time
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// BillingServiceOption configures optional billing service behaviour.
type BillingServiceOption func(*billingService)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) BillingServiceOption {
	return func(s *billingService) { s.now = now }
}

// WithRounding overrides the money rounding mode used for totals.
func WithRounding(mode accounting.RoundingMode) BillingServiceOption {
	return func(s *billingService) { s.aggregator.Rounding = mode }
}

// WithExportDir sets the directory per-account invoice PDFs are written under.
func WithExportDir(dir string) BillingServiceOption {
	return func(s *billingService) { s.exportDir = dir }
}

// NewBillingService creates the billing run orchestrator.
func NewBillingService(repos portsrepo.RepositoryProvider, renderer render.Renderer, opts ...BillingServiceOption) portssvc.BillingSvcFacade {
	s := &billingService{
		accountRepo:  repos.AccountRepo,
		providerRepo: repos.ProviderRepo,
		categoryRepo: repos.CategoryRepo,
		jobRepo:      repos.JobRepo,
		snapshotRepo: repos.SnapshotRepo,
		renderer:     renderer,
		aggregator:   NewAggregator(),
		exportDir:    "invoices",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shiftWeekendToFriday moves a period end landing on a weekend back to the
// preceding Friday. Billing periods close on business days.
func shiftWeekendToFriday(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, -2)
	default:
		return t
	}
}

// CreateRun fetches the period's jobs, joins and aggregates them, snapshots
// the result and returns the review dataset with proposed invoice numbers.
func (s *billingService) CreateRun(ctx context.Context, req dto.CreateBillingRunRequest) (*dto.BillingRunReviewResponse, error) {
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: period end %q", apperrors.ErrValidation, req.PeriodEnd)
	}
	periodEnd = shiftWeekendToFriday(periodEnd)
	period := periodEnd.Format("2006-01")

	// The lab's own reference row holds the remit-to details every invoice
	// prints; refuse to start a run without it.
	if _, err := s.accountRepo.FindAccountByNo(ctx, domain.LabAccountNo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: lab account %q is missing from the reference database", apperrors.ErrPrecondition, domain.LabAccountNo)
		}
		return nil, err
	}

	queryBy := domain.PeriodQueryBy(req.QueryBy)
	jobs, err := s.jobRepo.FetchJobs(ctx, queryBy, period)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch jobs", "period", period)
		return nil, err
	}

	refs, err := s.accountRepo.ListAccountRefs(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load account refs")
		return nil, err
	}

	rows, droppedJobs, droppedAccounts := s.aggregator.BuildRows(jobs, refs)
	if droppedJobs > 0 {
		s.LogInfo(ctx, "dropped jobs with unknown accounts",
			"count", droppedJobs, "accounts", strings.Join(droppedAccounts, ","))
	}

	run := domain.BillingRun{
		RunID:           uuid.New().String(),
		Period:          period,
		QueryBy:         queryBy,
		PeriodEnd:       periodEnd,
		FetchedAt:       s.now(),
		Rows:            rows,
		DroppedJobs:     droppedJobs,
		DroppedAccounts: droppedAccounts,
		InvoiceStarts:   req.InvoiceStarts,
	}

	if err := s.snapshotRepo.SaveRun(ctx, run); err != nil {
		s.LogError(ctx, err, "failed to snapshot run", "run_id", run.RunID)
		return nil, err
	}
	s.LogInfo(ctx, "billing run created", "run_id", run.RunID, "period", period, "jobs", len(rows))

	return s.buildReview(ctx, &run)
}

// GetRun rebuilds the review dataset from an existing run snapshot.
func (s *billingService) GetRun(ctx context.Context, runID string) (*dto.BillingRunReviewResponse, error) {
	run, err := s.snapshotRepo.FindRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return s.buildReview(ctx, run)
}

// DiscardRun drops a run snapshot without generating anything.
func (s *billingService) DiscardRun(ctx context.Context, runID string) error {
	return s.snapshotRepo.DeleteRun(ctx, runID)
}

// buildReview turns a snapshot into the nested review payload, resolving
// reference entities and proposing invoice numbers per category.
func (s *billingService) buildReview(ctx context.Context, run *domain.BillingRun) (*dto.BillingRunReviewResponse, error) {
	dataset := s.aggregator.Group(run.Rows, run.DroppedJobs, run.DroppedAccounts)

	accounts, providers, err := s.resolveParties(ctx, dataset)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	categoryByCode := make(map[int]domain.InvoiceCategory, len(categories))
	for _, c := range categories {
		categoryByCode[c.Code] = c
	}

	resp := &dto.BillingRunReviewResponse{
		RunID:           run.RunID,
		Period:          run.Period,
		QueryBy:         string(run.QueryBy),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		FetchedAt:       run.FetchedAt,
		DroppedJobs:     dataset.DroppedJobs,
		DroppedAccounts: dataset.DroppedAccounts,
		Totals:          dto.ToRunTotalsResponse(dataset.Totals),
	}

	for _, catGroup := range dataset.Categories {
		category, ok := categoryByCode[catGroup.CategoryCode]
		if !ok {
			return nil, fmt.Errorf("%w: invoice category %d", apperrors.ErrNotFound, catGroup.CategoryCode)
		}
		start := category.InvoiceStart
		if override, ok := run.InvoiceStarts[category.Code]; ok {
			start = override
		}
		proposed, err := AllocateInvoiceNumbers(start, catGroup.AccountNos())
		if err != nil {
			return nil, err
		}

		catResp := dto.CategoryReviewResponse{
			Code:         category.Code,
			Description:  category.Description,
			InvoiceStart: start,
			HasProviders: catGroup.HasProviders(),
			Totals:       dto.ToRunTotalsResponse(catGroup.Totals),
		}

		for _, provGroup := range catGroup.Providers {
			provResp := dto.ProviderReviewResponse{
				ProviderID: provGroup.ProviderID,
				Totals:     dto.ToRunTotalsResponse(provGroup.Totals),
			}
			if provGroup.ProviderID != domain.NoProviderID {
				if p, ok := providers[provGroup.ProviderID]; ok {
					provResp.Name = p.DisplayName()
				}
			}

			for _, acctGroup := range provGroup.Accounts {
				account := accounts[acctGroup.AccountNo]
				if provGroup.ProviderID == domain.NoProviderID && account.LedgerCode == "" {
					catResp.LedgerCodesNeeded++
				}
				acctResp := dto.AccountReviewResponse{
					AccountNo:         acctGroup.AccountNo,
					Name:              account.DisplayName(),
					Email:             account.Email,
					LedgerCode:        account.LedgerCode,
					TaxRate:           account.TaxRate,
					ProposedInvoiceNo: proposed[acctGroup.AccountNo],
					Totals:            dto.ToRunTotalsResponse(acctGroup.Totals),
				}
				for _, row := range acctGroup.Jobs {
					acctResp.Jobs = append(acctResp.Jobs, dto.ToJobRowResponse(row))
				}
				provResp.Accounts = append(provResp.Accounts, acctResp)
			}
			catResp.Providers = append(catResp.Providers, provResp)
		}
		resp.Categories = append(resp.Categories, catResp)
	}
	return resp, nil
}

// resolveParties batch-loads the accounts and providers a dataset references.
func (s *billingService) resolveParties(ctx context.Context, dataset domain.BillingDataset) (map[string]domain.Account, map[int64]domain.Provider, error) {
	acctSet := make(map[string]struct{})
	provSet := make(map[int64]struct{})
	for _, cat := range dataset.Categories {
		for _, prov := range cat.Providers {
			if prov.ProviderID != domain.NoProviderID {
				provSet[prov.ProviderID] = struct{}{}
			}
			for _, acct := range prov.Accounts {
				acctSet[acct.AccountNo] = struct{}{}
			}
		}
	}

	acctNos := make([]string, 0, len(acctSet))
	for no := range acctSet {
		acctNos = append(acctNos, no)
	}
	accounts, err := s.accountRepo.FindAccountsByNos(ctx, acctNos)
	if err != nil {
		return nil, nil, err
	}

	provIDs := make([]int64, 0, len(provSet))
	for id := range provSet {
		provIDs = append(provIDs, id)
	}
	providers, err := s.providerRepo.FindProvidersByIDs(ctx, provIDs)
	if err != nil {
		return nil, nil, err
	}
	return accounts, providers, nil
}

// generation is the resolved working set shared by all document actions for
// one category of one run.
type generation struct {
	run         *domain.BillingRun
	category    domain.InvoiceCategory
	group       domain.CategoryGroup
	accounts    map[string]domain.Account
	providers   map[int64]domain.Provider
	lab         domain.Account
	invoiceNos  map[string]string
	assigned    []string // every non-empty invoice number, grouping order
	order       []string // included accounts in grouping order
	included    map[string][]domain.BillingRow
	adjustments map[string][]domain.Adjustment
	invoiceDate time.Time
	periodLabel string
}

// prepareGeneration loads the snapshot and applies the operator's form data:
// which accounts get which invoice number, which jobs stay in, and what
// adjustments apply. Accounts mapped to an empty invoice number are excluded.
func (s *billingService) prepareGeneration(ctx context.Context, runID string, req dto.GenerateRequest) (*generation, error) {
	run, err := s.snapshotRepo.FindRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	invoiceDate, err := time.Parse("2006-01-02", req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice date %q", apperrors.ErrValidation, req.InvoiceDate)
	}

	dataset := s.aggregator.Group(run.Rows, run.DroppedJobs, run.DroppedAccounts)
	group := dataset.FindCategory(req.CategoryCode)
	if group == nil {
		return nil, fmt.Errorf("%w: category %d has no jobs in this run", apperrors.ErrNotFound, req.CategoryCode)
	}

	category, err := s.categoryRepo.FindCategoryByCode(ctx, req.CategoryCode)
	if err != nil {
		return nil, err
	}

	accounts, providers, err := s.resolveParties(ctx, dataset)
	if err != nil {
		return nil, err
	}

	lab, err := s.accountRepo.FindAccountByNo(ctx, domain.LabAccountNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: lab account %q is missing from the reference database", apperrors.ErrPrecondition, domain.LabAccountNo)
		}
		return nil, err
	}

	adjustments, err := NormalizeAdjustments(req.Adjustments)
	if err != nil {
		return nil, err
	}

	g := &generation{
		run:         run,
		category:    *category,
		group:       *group,
		accounts:    accounts,
		providers:   providers,
		lab:         *lab,
		invoiceNos:  make(map[string]string),
		included:    make(map[string][]domain.BillingRow),
		adjustments: adjustments,
		invoiceDate: invoiceDate,
		periodLabel: run.PeriodEnd.Format("January 2006"),
	}

	for _, prov := range group.Providers {
		for _, acct := range prov.Accounts {
			invoiceNo, ok := req.InvoiceNos[acct.AccountNo]
			if !ok {
				return nil, fmt.Errorf("%w: no invoice number decision for account %s", apperrors.ErrValidation, acct.AccountNo)
			}
			if invoiceNo == "" {
				continue // operator excluded the account
			}
			g.assigned = append(g.assigned, invoiceNo)
			rows, err := FilterIncluded(acct.Jobs, req.Inclusions[acct.AccountNo])
			if err != nil {
				return nil, fmt.Errorf("account %s: %w", acct.AccountNo, err)
			}
			if len(rows) == 0 && len(adjustments[acct.AccountNo]) == 0 {
				// Nothing left to bill; the number slot stays consumed but
				// the account is omitted from the documents.
				continue
			}
			g.invoiceNos[acct.AccountNo] = invoiceNo
			g.order = append(g.order, acct.AccountNo)
			g.included[acct.AccountNo] = rows
		}
	}
	return g, nil
}

// accountTotals derives one included account's totals from its surviving rows.
func (s *billingService) accountTotals(rows []domain.BillingRow) domain.RunTotals {
	var sales, tax decimal.Decimal
	for _, row := range rows {
		sales = sales.Add(row.Sales)
		tax = tax.Add(row.Tax)
	}
	return s.aggregator.totals(sales, tax)
}

// GenerateRegister renders the invoice register PDF for one category.
func (s *billingService) GenerateRegister(ctx context.Context, runID string, req dto.GenerateRequest) (*dto.Document, error) {
	g, err := s.prepareGeneration(ctx, runID, req)
	if err != nil {
		return nil, err
	}

	input := render.RegisterInput{
		CategoryDescription: g.category.Description,
		PeriodLabel:         g.periodLabel,
	}

	var grand render.TotalsLine
	for _, prov := range g.group.Providers {
		section := render.RegisterProviderSection{
			Name:        "Accounts",
			HasSubtotal: prov.ProviderID != domain.NoProviderID,
		}
		if prov.ProviderID != domain.NoProviderID {
			if p, ok := g.providers[prov.ProviderID]; ok {
				section.Name = p.DisplayName()
			}
		}

		var sub render.TotalsLine
		for _, acct := range prov.Accounts {
			rows, ok := g.included[acct.AccountNo]
			if !ok {
				continue
			}
			account := g.accounts[acct.AccountNo]
			totals := s.accountTotals(rows)
			adjs := domain.SumAdjustments(g.adjustments[acct.AccountNo])
			line := render.RegisterAccountLine{
				InvoiceNo:   g.invoiceNos[acct.AccountNo],
				Description: fmt.Sprintf("%s - #%s", account.DisplayName(), acct.AccountNo),
				Email:       account.Email,
				Sales:       totals.Sales,
				Tax:         totals.Tax,
				Adjustments: adjs,
				Total:       totals.Total.Add(adjs),
			}
			section.Accounts = append(section.Accounts, line)
			sub.Sales = sub.Sales.Add(line.Sales)
			sub.Tax = sub.Tax.Add(line.Tax)
			sub.Adjustments = sub.Adjustments.Add(line.Adjustments)
			sub.Total = sub.Total.Add(line.Total)
		}
		if len(section.Accounts) == 0 {
			continue
		}
		section.Subtotal = sub
		input.Sections = append(input.Sections, section)

		grand.Sales = grand.Sales.Add(sub.Sales)
		grand.Tax = grand.Tax.Add(sub.Tax)
		grand.Adjustments = grand.Adjustments.Add(sub.Adjustments)
		grand.Total = grand.Total.Add(sub.Total)
	}
	input.Totals = grand

	content, err := s.renderer.RenderRegister(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "failed to render register", "run_id", runID)
		return nil, err
	}
	return &dto.Document{
		Filename:    fmt.Sprintf("invoice_register_%s_%d.pdf", g.run.Period, g.category.Code),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// GenerateInvoices renders the combined invoices PDF, writes the per-account
// copies to the export directory, and advances the category's invoice start.
// This is the one generation action with an external side effect.
func (s *billingService) GenerateInvoices(ctx context.Context, runID string, req dto.GenerateInvoicesRequest) (*dto.Document, error) {
	if err := validateSaveTo(req.SaveTo); err != nil {
		return nil, err
	}

	g, err := s.prepareGeneration(ctx, runID, req.GenerateRequest)
	if err != nil {
		return nil, err
	}

	// Decide the next starting code before rendering anything so sequence
	// exhaustion surfaces with nothing written and nothing committed. Every
	// assigned number consumes its slot, including accounts whose jobs were
	// all excluded and which render no invoice.
	start := g.category.InvoiceStart
	if override, ok := g.run.InvoiceStarts[g.category.Code]; ok {
		start = override
	}
	nextStart, err := NextInvoiceStart(start, g.assigned)
	if err != nil {
		return nil, err
	}

	input := s.buildInvoicesInput(g)
	combined, perAccount, err := s.renderer.RenderInvoices(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "failed to render invoices", "run_id", runID)
		return nil, err
	}

	dir := filepath.Join(s.exportDir, req.SaveTo)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	saved := make([]string, 0, len(g.order))
	for _, acct := range g.order {
		pdf, ok := perAccount[acct]
		if !ok {
			continue
		}
		name := fmt.Sprintf("%s_%s.pdf", g.invoiceNos[acct], acct)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write invoice file %s: %w", path, err)
		}
		saved = append(saved, path)
	}

	if err := s.categoryRepo.AdvanceInvoiceStart(ctx, g.category.Code, nextStart, "billing"); err != nil {
		s.LogError(ctx, err, "failed to advance invoice start", "category", g.category.Code)
		return nil, err
	}
	s.LogInfo(ctx, "invoices generated",
		"run_id", runID, "category", g.category.Code, "count", len(g.order), "next_start", nextStart)

	return &dto.Document{
		Filename:    fmt.Sprintf("invoices_%s_%d.pdf", g.run.Period, g.category.Code),
		ContentType: "application/pdf",
		Content:     combined,
		SavedFiles:  saved,
	}, nil
}

// validateSaveTo keeps the operator-supplied export subdirectory a single
// plain path element.
func validateSaveTo(saveTo string) error {
	if saveTo == "" || saveTo != filepath.Base(saveTo) || strings.HasPrefix(saveTo, ".") {
		return fmt.Errorf("%w: save directory %q", apperrors.ErrValidation, saveTo)
	}
	return nil
}

func (s *billingService) buildInvoicesInput(g *generation) render.InvoicesInput {
	input := render.InvoicesInput{
		Lab:                 labView(g.lab),
		CategoryDescription: g.category.Description,
		PeriodLabel:         g.periodLabel,
		InvoiceDate:         g.invoiceDate.Format("01/02/2006"),
	}

	for _, prov := range g.group.Providers {
		var provView *render.PartyView
		if prov.ProviderID != domain.NoProviderID {
			if p, ok := g.providers[prov.ProviderID]; ok {
				provView = &render.PartyView{
					Name:  p.DisplayName(),
					Addr1: p.InvAddr1,
					Addr2: p.InvAddr2,
					City:  p.InvCity,
					State: p.InvState,
					Zip:   p.InvZip,
					Email: p.Email,
				}
			}
		}
		for _, acct := range prov.Accounts {
			rows, ok := g.included[acct.AccountNo]
			if !ok {
				continue
			}
			account := g.accounts[acct.AccountNo]
			totals := s.accountTotals(rows)
			adjs := g.adjustments[acct.AccountNo]

			inv := render.InvoiceView{
				InvoiceNo: g.invoiceNos[acct.AccountNo],
				AccountNo: acct.AccountNo,
				Account: render.PartyView{
					Name:  account.DisplayName(),
					Addr1: account.InvAddr1,
					Addr2: account.InvAddr2,
					City:  account.InvCity,
					State: account.InvState,
					Zip:   account.InvZip,
					Email: account.Email,
				},
				Provider:           provView,
				CustomerLedgerCode: account.LedgerCode,
				Subtotal:           totals.Sales,
				Tax:                totals.Tax,
				AdjustmentTotal:    domain.SumAdjustments(adjs),
				InvoiceTotal:       totals.Total.Add(domain.SumAdjustments(adjs)),
			}
			if !account.TaxRate.IsZero() {
				inv.TaxRatePct = account.TaxRate.Mul(decimal.NewFromInt(100)).String()
			}
			for _, row := range rows {
				inv.Jobs = append(inv.Jobs, render.JobLine{
					JobID:       row.JobID,
					EnterDate:   dto.FormatJobDate(row.EnterDate),
					ShipDate:    dto.FormatJobDate(row.ShipDate),
					PatientName: row.PatientName,
					Price:       row.Sales,
				})
			}
			for _, adj := range adjs {
				inv.Adjustments = append(inv.Adjustments, render.AdjustmentLine{
					Kind:        string(adj.Kind),
					Reference:   adj.Reference,
					Description: adj.Description,
					Amount:      adj.Amount,
				})
			}
			input.Invoices = append(input.Invoices, inv)
		}
	}
	return input
}

// GenerateSummary renders the billing summary workbook, one worksheet per
// provider group.
func (s *billingService) GenerateSummary(ctx context.Context, runID string, req dto.GenerateRequest) (*dto.Document, error) {
	g, err := s.prepareGeneration(ctx, runID, req)
	if err != nil {
		return nil, err
	}

	input := render.SummaryInput{
		Title:       fmt.Sprintf("%s Billing Summary", g.periodLabel),
		PeriodLabel: g.periodLabel,
		Author:      g.lab.DisplayName(),
	}

	usedNames := make(map[string]int)
	for _, prov := range g.group.Providers {
		sheet := render.SummarySheet{ProviderName: "Direct Accounts"}
		if prov.ProviderID != domain.NoProviderID {
			if p, ok := g.providers[prov.ProviderID]; ok {
				sheet.ProviderName = p.DisplayName()
				sheet.ProviderLedgerCode = p.LedgerCode
			}
		}
		sheet.SheetName = sheetName(sheet.ProviderName, usedNames)

		patients := make(map[string]struct{})
		for _, acct := range prov.Accounts {
			rows, ok := g.included[acct.AccountNo]
			if !ok {
				continue
			}
			account := g.accounts[acct.AccountNo]
			invoiceNo := g.invoiceNos[acct.AccountNo]
			for _, row := range rows {
				sheet.Rows = append(sheet.Rows, render.SummaryRow{
					InvoiceNo:   invoiceNo,
					AccountNo:   acct.AccountNo,
					ShippedTo:   account.DisplayName(),
					JobID:       row.JobID,
					PatientName: row.PatientName,
					FrameStyle:  row.FrameDisplay(),
					ShipDate:    dto.FormatJobDate(row.ShipDate),
					LensPrice:   row.LensPrice,
					FramePrice:  row.FramePrice,
					TotalPrice:  row.Sales,
				})
				patients[row.PatientName] = struct{}{}
			}
			for _, adj := range g.adjustments[acct.AccountNo] {
				sheet.AdjustmentRows = append(sheet.AdjustmentRows, render.SummaryAdjustmentRow{
					InvoiceNo:   invoiceNo,
					AccountNo:   acct.AccountNo,
					ShippedTo:   account.DisplayName(),
					Reference:   adj.Reference,
					Description: adj.Description,
					Kind:        string(adj.Kind),
					Amount:      adj.Amount,
				})
			}
		}
		if len(sheet.Rows) == 0 && len(sheet.AdjustmentRows) == 0 {
			continue
		}
		sheet.PatientCount = len(patients)
		input.Sheets = append(input.Sheets, sheet)
	}

	content, err := s.renderer.RenderSummary(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "failed to render summary", "run_id", runID)
		return nil, err
	}
	return &dto.Document{
		Filename:    fmt.Sprintf("billing_summary_%s_%d.xlsx", g.run.Period, g.category.Code),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

// sheetName fits a provider name into Excel's 31-character sheet name limit,
// deduplicating collisions with a numeric suffix.
func sheetName(name string, used map[string]int) string {
	const maxLen = 31
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, name)
	if len(cleaned) > maxLen {
		cleaned = cleaned[:maxLen]
	}
	used[cleaned]++
	if n := used[cleaned]; n > 1 {
		suffix := fmt.Sprintf(" (%d)", n)
		if len(cleaned)+len(suffix) > maxLen {
			cleaned = cleaned[:maxLen-len(suffix)]
		}
		cleaned += suffix
	}
	return cleaned
}

// GenerateCreditMemo renders the credit memo request PDF for one account's
// adjustments.
func (s *billingService) GenerateCreditMemo(ctx context.Context, runID string, req dto.GenerateCreditRequest) (*dto.Document, error) {
	g, err := s.prepareGeneration(ctx, runID, req.GenerateRequest)
	if err != nil {
		return nil, err
	}

	adjs := g.adjustments[req.AccountNo]
	if len(adjs) == 0 {
		return nil, fmt.Errorf("%w: account %s has no adjustments to request credit for", apperrors.ErrValidation, req.AccountNo)
	}

	input := render.CreditInput{
		Lab:       labView(g.lab),
		AccountNo: req.AccountNo,
		Date:      g.invoiceDate.Format("January 2, 2006"),
	}
	for _, adj := range adjs {
		input.Adjustments = append(input.Adjustments, render.AdjustmentLine{
			Kind:        string(adj.Kind),
			Reference:   adj.Reference,
			Description: adj.Description,
			Amount:      adj.Amount,
		})
	}

	content, err := s.renderer.RenderCreditMemo(ctx, input)
	if err != nil {
		s.LogError(ctx, err, "failed to render credit memo", "run_id", runID)
		return nil, err
	}
	return &dto.Document{
		Filename:    fmt.Sprintf("credit_memo_%s_%s.pdf", g.run.Period, req.AccountNo),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func labView(lab domain.Account) render.LabView {
	return render.LabView{
		Name:         lab.Name,
		Addr1:        lab.InvAddr1,
		Addr2:        lab.InvAddr2,
		City:         lab.InvCity,
		State:        lab.InvState,
		Zip:          lab.InvZip,
		Phone:        lab.Phone,
		Fax:          lab.FaxNo,
		Email:        lab.Email,
		ContactName:  lab.ContactName,
		ContactTitle: lab.ContactTitle,
		SAPAccountNo: lab.LedgerCode,
	}
}
