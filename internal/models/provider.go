package models

import (
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// Provider mirrors a row of the providers reference table.
type Provider struct {
	ProviderID int64  `db:"provider_id"`
	Name       string `db:"name"`
	ShortName  string `db:"short_name"`
	InvAddr1   string `db:"inv_addr1"`
	InvAddr2   string `db:"inv_addr2"`
	InvCity    string `db:"inv_city"`
	InvState   string `db:"inv_state"`
	InvZip     string `db:"inv_zip"`
	Email      string `db:"email"`
	LedgerCode string `db:"ledger_code"`
	AuditFields
}

// ToDomainProvider converts a row back to the domain entity.
func ToDomainProvider(m Provider) domain.Provider {
	return domain.Provider{
		ProviderID: m.ProviderID,
		Name:       m.Name,
		ShortName:  m.ShortName,
		InvAddr1:   m.InvAddr1,
		InvAddr2:   m.InvAddr2,
		InvCity:    m.InvCity,
		InvState:   m.InvState,
		InvZip:     m.InvZip,
		Email:      m.Email,
		LedgerCode: m.LedgerCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProviderSlice converts a slice of provider rows to domain entities.
func ToDomainProviderSlice(ms []Provider) []domain.Provider {
	ds := make([]domain.Provider, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProvider(m)
	}
	return ds
}
