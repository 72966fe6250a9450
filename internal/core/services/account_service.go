package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	portssvc "github.com/hasanqazi87/lab-site/internal/core/ports/services"
	"github.com/hasanqazi87/lab-site/internal/dto"
)

// accountService manages the customer account reference data.
type accountService struct {
	BaseService
	repo portsrepo.AccountRepositoryFacade
	now  func() time.Time
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// NewAccountService creates the account reference service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{repo: repo, now: time.Now}
}

// GetAccountByNo retrieves one account.
func (s *accountService) GetAccountByNo(ctx context.Context, accountNo string) (*domain.Account, error) {
	return s.repo.FindAccountByNo(ctx, accountNo)
}

// ListAccounts retrieves accounts ordered by account number.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListAccounts(ctx, limit, offset)
}

// CreateAccount persists a new account. Reserved house account numbers are
// rejected; they never appear on invoices.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	for _, reserved := range domain.ReservedAccountNos {
		if req.AccountNo == reserved {
			return nil, fmt.Errorf("%w: account number %s is reserved", apperrors.ErrValidation, req.AccountNo)
		}
	}
	if req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	now := s.now()
	account := domain.Account{
		AccountNo:    req.AccountNo,
		Name:         req.Name,
		ShortName:    req.ShortName,
		InvAddr1:     req.InvAddr1,
		InvAddr2:     req.InvAddr2,
		InvCity:      req.InvCity,
		InvState:     req.InvState,
		InvZip:       req.InvZip,
		Phone:        req.Phone,
		FaxNo:        req.FaxNo,
		Email:        req.Email,
		ContactName:  req.ContactName,
		ContactTitle: req.ContactTitle,
		TaxRate:      req.TaxRate,
		TaxExemption: req.TaxExemption,
		ProviderID:   req.ProviderID,
		LedgerCode:   req.LedgerCode,
		CategoryCode: req.CategoryCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "billing",
			LastUpdatedAt: now,
			LastUpdatedBy: "billing",
		},
	}
	if err := s.repo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account", "account_no", req.AccountNo)
		return nil, err
	}
	s.LogInfo(ctx, "account created", "account_no", req.AccountNo)
	return &account, nil
}

// UpdateAccount applies partial updates to an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, accountNo string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.repo.FindAccountByNo(ctx, accountNo)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.ShortName != nil {
		account.ShortName = *req.ShortName
	}
	if req.InvAddr1 != nil {
		account.InvAddr1 = *req.InvAddr1
	}
	if req.InvAddr2 != nil {
		account.InvAddr2 = *req.InvAddr2
	}
	if req.InvCity != nil {
		account.InvCity = *req.InvCity
	}
	if req.InvState != nil {
		account.InvState = *req.InvState
	}
	if req.InvZip != nil {
		account.InvZip = *req.InvZip
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.FaxNo != nil {
		account.FaxNo = *req.FaxNo
	}
	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.ContactName != nil {
		account.ContactName = *req.ContactName
	}
	if req.ContactTitle != nil {
		account.ContactTitle = *req.ContactTitle
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
		}
		account.TaxRate = *req.TaxRate
	}
	if req.TaxExemption != nil {
		account.TaxExemption = *req.TaxExemption
	}
	if req.ProviderID != nil {
		account.ProviderID = *req.ProviderID
	}
	if req.LedgerCode != nil {
		account.LedgerCode = *req.LedgerCode
	}
	if req.CategoryCode != nil {
		account.CategoryCode = *req.CategoryCode
	}
	account.LastUpdatedAt = s.now()
	account.LastUpdatedBy = "billing"

	if err := s.repo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", "account_no", accountNo)
		return nil, err
	}
	return account, nil
}
