package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/core/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
	"github.com/hasanqazi87/lab-site/internal/render"
)

// --- Repository mocks ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNo(ctx context.Context, accountNo string) (*domain.Account, error) {
	args := m.Called(ctx, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNos(ctx context.Context, accountNos []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountNos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountRefs(ctx context.Context) ([]domain.AccountRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountRef), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindProviderByID(ctx context.Context, providerID int64) (*domain.Provider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindProvidersByIDs(ctx context.Context, providerIDs []int64) (map[int64]domain.Provider, error) {
	args := m.Called(ctx, providerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByCode(ctx context.Context, code int) (*domain.InvoiceCategory, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.InvoiceCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) AdvanceInvoiceStart(ctx context.Context, code int, newStart string, updatedBy string) error {
	args := m.Called(ctx, code, newStart, updatedBy)
	return args.Error(0)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FetchJobs(ctx context.Context, queryBy domain.PeriodQueryBy, period string) ([]domain.JobRecord, error) {
	args := m.Called(ctx, queryBy, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobRecord), args.Error(1)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) SaveRun(ctx context.Context, run domain.BillingRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindRun(ctx context.Context, runID string) (*domain.BillingRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRun), args.Error(1)
}

func (m *MockSnapshotRepository) DeleteRun(ctx context.Context, runID string) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderRegister(ctx context.Context, in render.RegisterInput) ([]byte, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderInvoices(ctx context.Context, in render.InvoicesInput) ([]byte, map[string][]byte, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(map[string][]byte), args.Error(2)
}

func (m *MockRenderer) RenderSummary(ctx context.Context, in render.SummaryInput) ([]byte, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderCreditMemo(ctx context.Context, in render.CreditInput) ([]byte, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Test Suite Setup ---

type BillingServiceTestSuite struct {
	suite.Suite
	accountRepo  *MockAccountRepository
	providerRepo *MockProviderRepository
	categoryRepo *MockCategoryRepository
	jobRepo      *MockJobRepository
	snapshotRepo *MockSnapshotRepository
	renderer     *MockRenderer
	exportDir    string
	service      portssvc.BillingSvcFacade
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.providerRepo = new(MockProviderRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.jobRepo = new(MockJobRepository)
	suite.snapshotRepo = new(MockSnapshotRepository)
	suite.renderer = new(MockRenderer)
	suite.exportDir = suite.T().TempDir()

	repos := portsrepo.RepositoryProvider{
		AccountRepo:  suite.accountRepo,
		ProviderRepo: suite.providerRepo,
		CategoryRepo: suite.categoryRepo,
		JobRepo:      suite.jobRepo,
		SnapshotRepo: suite.snapshotRepo,
	}
	suite.service = services.NewBillingService(
		repos,
		suite.renderer,
		services.WithExportDir(suite.exportDir),
		services.WithClock(func() time.Time {
			return time.Date(2026, time.August, 3, 9, 0, 0, 0, time.UTC)
		}),
	)
}

func (suite *BillingServiceTestSuite) labAccount() *domain.Account {
	return &domain.Account{
		AccountNo: domain.LabAccountNo,
		Name:      "Institute Optical Lab",
		Phone:     "555-0100",
		Email:     "billing@lab.example",
	}
}

func (suite *BillingServiceTestSuite) retailCategory() domain.InvoiceCategory {
	return domain.InvoiceCategory{Code: 1, Description: "Retail", InvoiceStart: "RT015001"}
}

// --- CreateRun ---

func (suite *BillingServiceTestSuite) TestCreateRunShiftsWeekendPeriodEnd() {
	// 2026-08-01 is a Saturday; the run must close on Friday 2026-07-31 and
	// bill period 2026-07.
	suite.accountRepo.On("FindAccountByNo", mock.Anything, domain.LabAccountNo).Return(suite.labAccount(), nil)
	suite.jobRepo.On("FetchJobs", mock.Anything, domain.QueryByShipDate, "2026-07").
		Return([]domain.JobRecord{job("J1", "100", 10, "Smith, Ann", "100.00")}, nil)
	suite.accountRepo.On("ListAccountRefs", mock.Anything).
		Return([]domain.AccountRef{{AccountNo: "100", CategoryCode: 1, TaxRate: dec("0.0825")}}, nil)
	suite.snapshotRepo.On("SaveRun", mock.Anything, mock.AnythingOfType("domain.BillingRun")).Return(nil)
	suite.accountRepo.On("FindAccountsByNos", mock.Anything, mock.Anything).
		Return(map[string]domain.Account{"100": {AccountNo: "100", Name: "Eye Care One"}}, nil)
	suite.providerRepo.On("FindProvidersByIDs", mock.Anything, mock.Anything).
		Return(map[int64]domain.Provider{}, nil)
	suite.categoryRepo.On("ListCategories", mock.Anything).
		Return([]domain.InvoiceCategory{suite.retailCategory()}, nil)

	review, err := suite.service.CreateRun(context.Background(), dto.CreateBillingRunRequest{
		QueryBy:   "ship_date",
		PeriodEnd: "2026-08-01",
	})

	suite.Require().NoError(err)
	suite.Equal("2026-07", review.Period)
	suite.Equal("2026-07-31", review.PeriodEnd)
	suite.NotEmpty(review.RunID)
	suite.Require().Len(review.Categories, 1)
	suite.Equal("RT015001", review.Categories[0].Providers[0].Accounts[0].ProposedInvoiceNo)

	saved := suite.snapshotRepo.Calls[0].Arguments.Get(1).(domain.BillingRun)
	suite.Equal(review.RunID, saved.RunID)
	suite.Len(saved.Rows, 1)
}

func (suite *BillingServiceTestSuite) TestCreateRunRequiresLabAccount() {
	suite.accountRepo.On("FindAccountByNo", mock.Anything, domain.LabAccountNo).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateRun(context.Background(), dto.CreateBillingRunRequest{
		QueryBy:   "ship_date",
		PeriodEnd: "2026-07-31",
	})

	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.jobRepo.AssertNotCalled(suite.T(), "FetchJobs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestCreateRunSurfacesDroppedJobs() {
	suite.accountRepo.On("FindAccountByNo", mock.Anything, domain.LabAccountNo).Return(suite.labAccount(), nil)
	suite.jobRepo.On("FetchJobs", mock.Anything, domain.QueryByEnterDate, "2026-07").
		Return([]domain.JobRecord{
			job("J1", "100", 10, "Smith, Ann", "100.00"),
			job("J2", "999", 11, "Lee, Bo", "50.00"),
		}, nil)
	suite.accountRepo.On("ListAccountRefs", mock.Anything).
		Return([]domain.AccountRef{{AccountNo: "100", CategoryCode: 1}}, nil)
	suite.snapshotRepo.On("SaveRun", mock.Anything, mock.Anything).Return(nil)
	suite.accountRepo.On("FindAccountsByNos", mock.Anything, mock.Anything).
		Return(map[string]domain.Account{"100": {AccountNo: "100"}}, nil)
	suite.providerRepo.On("FindProvidersByIDs", mock.Anything, mock.Anything).
		Return(map[int64]domain.Provider{}, nil)
	suite.categoryRepo.On("ListCategories", mock.Anything).
		Return([]domain.InvoiceCategory{suite.retailCategory()}, nil)

	review, err := suite.service.CreateRun(context.Background(), dto.CreateBillingRunRequest{
		QueryBy:   "enter_date",
		PeriodEnd: "2026-07-31",
	})

	suite.Require().NoError(err)
	suite.Equal(1, review.DroppedJobs)
	suite.Equal([]string{"999"}, review.DroppedAccounts)
}

func (suite *BillingServiceTestSuite) TestGetRunExpiredSnapshot() {
	suite.snapshotRepo.On("FindRun", mock.Anything, "gone").
		Return(nil, apperrors.ErrSnapshotExpired)

	_, err := suite.service.GetRun(context.Background(), "gone")
	suite.ErrorIs(err, apperrors.ErrSnapshotExpired)
}

// --- Generation ---

func (suite *BillingServiceTestSuite) snapshotRun() *domain.BillingRun {
	agg := services.NewAggregator()
	rows, _, _ := agg.BuildRows(
		[]domain.JobRecord{
			job("J1", "100", 10, "Smith, Ann", "100.00"),
			job("J2", "100", 12, "Lee, Bo", "50.00"),
			job("J3", "200", 14, "Cruz, Dee", "80.00"),
		},
		[]domain.AccountRef{
			{AccountNo: "100", CategoryCode: 1, TaxRate: dec("0.0825")},
			{AccountNo: "200", CategoryCode: 1},
		},
	)
	return &domain.BillingRun{
		RunID:     "run-1",
		Period:    "2026-07",
		QueryBy:   domain.QueryByShipDate,
		PeriodEnd: time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
		FetchedAt: time.Date(2026, time.August, 3, 9, 0, 0, 0, time.UTC),
		Rows:      rows,
	}
}

func (suite *BillingServiceTestSuite) expectGenerationLookups() {
	suite.snapshotRepo.On("FindRun", mock.Anything, "run-1").Return(suite.snapshotRun(), nil)
	category := suite.retailCategory()
	suite.categoryRepo.On("FindCategoryByCode", mock.Anything, 1).Return(&category, nil)
	suite.accountRepo.On("FindAccountsByNos", mock.Anything, mock.Anything).
		Return(map[string]domain.Account{
			"100": {AccountNo: "100", Name: "Eye Care One", TaxRate: dec("0.0825")},
			"200": {AccountNo: "200", Name: "Vision Two"},
		}, nil)
	suite.providerRepo.On("FindProvidersByIDs", mock.Anything, mock.Anything).
		Return(map[int64]domain.Provider{}, nil)
	suite.accountRepo.On("FindAccountByNo", mock.Anything, domain.LabAccountNo).Return(suite.labAccount(), nil)
}

func (suite *BillingServiceTestSuite) TestGenerateInvoicesCommitsNextStart() {
	suite.expectGenerationLookups()
	suite.renderer.On("RenderInvoices", mock.Anything, mock.AnythingOfType("render.InvoicesInput")).
		Return([]byte("combined"), map[string][]byte{"100": []byte("pdf-100"), "200": []byte("pdf-200")}, nil)
	suite.categoryRepo.On("AdvanceInvoiceStart", mock.Anything, 1, "RT015003", "billing").Return(nil)

	doc, err := suite.service.GenerateInvoices(context.Background(), "run-1", dto.GenerateInvoicesRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT015001", "200": "RT015002"},
		},
		SaveTo: "july-2026",
	})

	suite.Require().NoError(err)
	suite.Equal("invoices_2026-07_1.pdf", doc.Filename)
	suite.Equal([]byte("combined"), doc.Content)
	suite.Require().Len(doc.SavedFiles, 2)

	written, readErr := os.ReadFile(filepath.Join(suite.exportDir, "july-2026", "RT015001_100.pdf"))
	suite.Require().NoError(readErr)
	suite.Equal([]byte("pdf-100"), written)

	suite.categoryRepo.AssertCalled(suite.T(), "AdvanceInvoiceStart", mock.Anything, 1, "RT015003", "billing")
}

func (suite *BillingServiceTestSuite) TestGenerateInvoicesConsumedSlotsAdvancePastExcludedAccount() {
	// Account 200's only job is deselected, so it renders no invoice, but its
	// assigned number still consumes the slot: the next start must move past
	// RT015002, not reuse it.
	suite.expectGenerationLookups()
	suite.renderer.On("RenderInvoices", mock.Anything, mock.AnythingOfType("render.InvoicesInput")).
		Return([]byte("combined"), map[string][]byte{"100": []byte("pdf-100")}, nil)
	suite.categoryRepo.On("AdvanceInvoiceStart", mock.Anything, 1, "RT015003", "billing").Return(nil)

	doc, err := suite.service.GenerateInvoices(context.Background(), "run-1", dto.GenerateInvoicesRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT015001", "200": "RT015002"},
			Inclusions:   map[string][]bool{"200": {false}},
		},
		SaveTo: "july-2026",
	})

	suite.Require().NoError(err)
	suite.Len(doc.SavedFiles, 1)

	input := suite.renderer.Calls[0].Arguments.Get(1).(render.InvoicesInput)
	suite.Require().Len(input.Invoices, 1)
	suite.Equal("100", input.Invoices[0].AccountNo)

	suite.categoryRepo.AssertCalled(suite.T(), "AdvanceInvoiceStart", mock.Anything, 1, "RT015003", "billing")
}

func (suite *BillingServiceTestSuite) TestGenerateInvoicesExhaustionAbortsBeforeRender() {
	suite.expectGenerationLookups()

	_, err := suite.service.GenerateInvoices(context.Background(), "run-1", dto.GenerateInvoicesRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT019999", "200": "RT019999"},
		},
		SaveTo: "july-2026",
	})

	suite.ErrorIs(err, apperrors.ErrSequenceExhausted)
	suite.renderer.AssertNotCalled(suite.T(), "RenderInvoices", mock.Anything, mock.Anything)
	suite.categoryRepo.AssertNotCalled(suite.T(), "AdvanceInvoiceStart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestGenerateInvoicesRejectsTraversalSaveTo() {
	_, err := suite.service.GenerateInvoices(context.Background(), "run-1", dto.GenerateInvoicesRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT015001"},
		},
		SaveTo: "../escape",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.snapshotRepo.AssertNotCalled(suite.T(), "FindRun", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestGenerateRegisterExcludesEmptyInvoiceNo() {
	suite.expectGenerationLookups()
	suite.renderer.On("RenderRegister", mock.Anything, mock.AnythingOfType("render.RegisterInput")).
		Return([]byte("register"), nil)

	doc, err := suite.service.GenerateRegister(context.Background(), "run-1", dto.GenerateRequest{
		CategoryCode: 1,
		InvoiceDate:  "2026-07-31",
		InvoiceNos:   map[string]string{"100": "RT015001", "200": ""},
	})

	suite.Require().NoError(err)
	suite.Equal([]byte("register"), doc.Content)

	input := suite.renderer.Calls[0].Arguments.Get(1).(render.RegisterInput)
	suite.Require().Len(input.Sections, 1)
	suite.Require().Len(input.Sections[0].Accounts, 1)
	line := input.Sections[0].Accounts[0]
	suite.Equal("RT015001", line.InvoiceNo)
	// 150 sales, 12.38 tax
	suite.True(line.Sales.Equal(dec("150.00")))
	suite.True(line.Tax.Equal(dec("12.38")))
	suite.True(input.Totals.Total.Equal(dec("162.38")))
}

func (suite *BillingServiceTestSuite) TestGenerateRegisterAppliesAdjustments() {
	suite.expectGenerationLookups()
	suite.renderer.On("RenderRegister", mock.Anything, mock.AnythingOfType("render.RegisterInput")).
		Return([]byte("register"), nil)

	_, err := suite.service.GenerateRegister(context.Background(), "run-1", dto.GenerateRequest{
		CategoryCode: 1,
		InvoiceDate:  "2026-07-31",
		InvoiceNos:   map[string]string{"100": "RT015001", "200": ""},
		Adjustments: map[string][]dto.AdjustmentRequest{
			"100": {
				{Kind: "Credit", Reference: "CM-1", Description: "breakage", Amount: dec("20.00")},
				{Kind: "Debit", Reference: "DM-1", Description: "redo fee", Amount: dec("5.00")},
			},
		},
	})

	suite.Require().NoError(err)
	input := suite.renderer.Calls[0].Arguments.Get(1).(render.RegisterInput)
	line := input.Sections[0].Accounts[0]
	suite.True(line.Adjustments.Equal(dec("-15.00")))
	suite.True(line.Total.Equal(dec("147.38")), "got %s", line.Total)
}

func (suite *BillingServiceTestSuite) TestGenerateSummarySheets() {
	suite.expectGenerationLookups()
	suite.renderer.On("RenderSummary", mock.Anything, mock.AnythingOfType("render.SummaryInput")).
		Return([]byte("xlsx"), nil)

	doc, err := suite.service.GenerateSummary(context.Background(), "run-1", dto.GenerateRequest{
		CategoryCode: 1,
		InvoiceDate:  "2026-07-31",
		InvoiceNos:   map[string]string{"100": "RT015001", "200": "RT015002"},
	})

	suite.Require().NoError(err)
	suite.Equal("billing_summary_2026-07_1.xlsx", doc.Filename)

	input := suite.renderer.Calls[0].Arguments.Get(1).(render.SummaryInput)
	suite.Equal("July 2026 Billing Summary", input.Title)
	suite.Require().Len(input.Sheets, 1)
	suite.Len(input.Sheets[0].Rows, 3)
	suite.Equal(3, input.Sheets[0].PatientCount)
}

func (suite *BillingServiceTestSuite) TestGenerateCreditMemoRequiresAdjustments() {
	suite.expectGenerationLookups()

	_, err := suite.service.GenerateCreditMemo(context.Background(), "run-1", dto.GenerateCreditRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT015001", "200": "RT015002"},
		},
		AccountNo: "100",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillingServiceTestSuite) TestGenerateCreditMemo() {
	suite.expectGenerationLookups()
	suite.renderer.On("RenderCreditMemo", mock.Anything, mock.AnythingOfType("render.CreditInput")).
		Return([]byte("credit"), nil)

	doc, err := suite.service.GenerateCreditMemo(context.Background(), "run-1", dto.GenerateCreditRequest{
		GenerateRequest: dto.GenerateRequest{
			CategoryCode: 1,
			InvoiceDate:  "2026-07-31",
			InvoiceNos:   map[string]string{"100": "RT015001", "200": "RT015002"},
			Adjustments: map[string][]dto.AdjustmentRequest{
				"100": {{Kind: "Credit", Reference: "CM-1", Description: "breakage", Amount: dec("20.00")}},
			},
		},
		AccountNo: "100",
	})

	suite.Require().NoError(err)
	suite.Equal("credit_memo_2026-07_100.pdf", doc.Filename)

	input := suite.renderer.Calls[0].Arguments.Get(1).(render.CreditInput)
	suite.Equal("100", input.AccountNo)
	suite.Require().Len(input.Adjustments, 1)
	suite.True(input.Adjustments[0].Amount.Equal(dec("-20.00")))
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
