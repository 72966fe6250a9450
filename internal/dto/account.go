package dto

import (
	"github.com/hasanqazi87/lab-site/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest carries the fields needed to create a customer account.
type CreateAccountRequest struct {
	AccountNo    string          `json:"accountNo" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	ShortName    string          `json:"shortName"`
	InvAddr1     string          `json:"invAddr1"`
	InvAddr2     string          `json:"invAddr2"`
	InvCity      string          `json:"invCity"`
	InvState     string          `json:"invState"`
	InvZip       string          `json:"invZip"`
	Phone        string          `json:"phone"`
	FaxNo        string          `json:"faxNo"`
	Email        string          `json:"email" binding:"omitempty,email"`
	ContactName  string          `json:"contactName"`
	ContactTitle string          `json:"contactTitle"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxExemption string          `json:"taxExemption"`
	ProviderID   int64           `json:"providerID"`
	LedgerCode   string          `json:"ledgerCode"`
	CategoryCode int             `json:"categoryCode" binding:"required"`
}

// UpdateAccountRequest carries the mutable account fields. Nil pointers leave
// the stored value unchanged.
type UpdateAccountRequest struct {
	Name         *string          `json:"name"`
	ShortName    *string          `json:"shortName"`
	InvAddr1     *string          `json:"invAddr1"`
	InvAddr2     *string          `json:"invAddr2"`
	InvCity      *string          `json:"invCity"`
	InvState     *string          `json:"invState"`
	InvZip       *string          `json:"invZip"`
	Phone        *string          `json:"phone"`
	FaxNo        *string          `json:"faxNo"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	ContactName  *string          `json:"contactName"`
	ContactTitle *string          `json:"contactTitle"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
	TaxExemption *string          `json:"taxExemption"`
	ProviderID   *int64           `json:"providerID"`
	LedgerCode   *string          `json:"ledgerCode"`
	CategoryCode *int             `json:"categoryCode"`
}

// AccountResponse is the transport form of a customer account.
type AccountResponse struct {
	AccountNo    string          `json:"accountNo"`
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
	ProviderID   int64           `json:"providerID"`
	LedgerCode   string          `json:"ledgerCode"`
	CategoryCode int             `json:"categoryCode"`
}

// ToAccountResponse converts a domain account to its response form.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountNo:    a.AccountNo,
		Name:         a.Name,
		ShortName:    a.ShortName,
		InvAddr1:     a.InvAddr1,
		InvAddr2:     a.InvAddr2,
		InvCity:      a.InvCity,
		InvState:     a.InvState,
		InvZip:       a.InvZip,
		Phone:        a.Phone,
		FaxNo:        a.FaxNo,
		Email:        a.Email,
		ContactName:  a.ContactName,
		ContactTitle: a.ContactTitle,
		TaxRate:      a.TaxRate,
		TaxExemption: a.TaxExemption,
		ProviderID:   a.ProviderID,
		LedgerCode:   a.LedgerCode,
		CategoryCode: a.CategoryCode,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, ToAccountResponse(a))
	}
	return responses
}
