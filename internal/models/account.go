package models

import (
	"github.com/shopspring/decimal"

	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// Account mirrors a row of the accounts reference table.
type Account struct {
	AccountNo    string          `db:"account_no"`
	Name         string          `db:"name"`
	ShortName    string          `db:"short_name"`
	InvAddr1     string          `db:"inv_addr1"`
	InvAddr2     string          `db:"inv_addr2"`
	InvCity      string          `db:"inv_city"`
	InvState     string          `db:"inv_state"`
	InvZip       string          `db:"inv_zip"`
	Phone        string          `db:"phone"`
	FaxNo        string          `db:"fax_no"`
	Email        string          `db:"email"`
	ContactName  string          `db:"contact_name"`
	ContactTitle string          `db:"contact_title"`
	TaxRate      decimal.Decimal `db:"tax_rate"`
	TaxExemption string          `db:"tax_exemption"`
	ProviderID   int64           `db:"provider_id"`
	LedgerCode   string          `db:"ledger_code"`
	CategoryCode int             `db:"category_code"`
	AuditFields
}

// ToModelAccount converts a domain Account to its row form.
func ToModelAccount(d domain.Account) Account {
	return Account{
		AccountNo:    d.AccountNo,
		Name:         d.Name,
		ShortName:    d.ShortName,
		InvAddr1:     d.InvAddr1,
		InvAddr2:     d.InvAddr2,
		InvCity:      d.InvCity,
		InvState:     d.InvState,
		InvZip:       d.InvZip,
		Phone:        d.Phone,
		FaxNo:        d.FaxNo,
		Email:        d.Email,
		ContactName:  d.ContactName,
		ContactTitle: d.ContactTitle,
		TaxRate:      d.TaxRate,
		TaxExemption: d.TaxExemption,
		ProviderID:   d.ProviderID,
		LedgerCode:   d.LedgerCode,
		CategoryCode: d.CategoryCode,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a row back to the domain entity.
func ToDomainAccount(m Account) domain.Account {
	return domain.Account{
		AccountNo:    m.AccountNo,
		Name:         m.Name,
		ShortName:    m.ShortName,
		InvAddr1:     m.InvAddr1,
		InvAddr2:     m.InvAddr2,
		InvCity:      m.InvCity,
		InvState:     m.InvState,
		InvZip:       m.InvZip,
		Phone:        m.Phone,
		FaxNo:        m.FaxNo,
		Email:        m.Email,
		ContactName:  m.ContactName,
		ContactTitle: m.ContactTitle,
		TaxRate:      m.TaxRate,
		TaxExemption: m.TaxExemption,
		ProviderID:   m.ProviderID,
		LedgerCode:   m.LedgerCode,
		CategoryCode: m.CategoryCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of account rows to domain entities.
func ToDomainAccountSlice(ms []Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelAuditFields converts domain audit fields to their row form.
func ToModelAuditFields(d domain.AuditFields) AuditFields {
	return AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts row audit fields back to the domain form.
func ToDomainAuditFields(m AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
