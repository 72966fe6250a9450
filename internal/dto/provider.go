package dto

import (
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// ProviderResponse is the transport form of a billing provider.
type ProviderResponse struct {
	ProviderID int64  `json:"providerID"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	InvAddr1   string `json:"invAddr1"`
	InvAddr2   string `json:"invAddr2"`
	InvCity    string `json:"invCity"`
	InvState   string `json:"invState"`
	InvZip     string `json:"invZip"`
	Email      string `json:"email"`
	LedgerCode string `json:"ledgerCode"`
}

// ToProviderResponse converts a domain provider to its response form.
func ToProviderResponse(p domain.Provider) ProviderResponse {
	return ProviderResponse{
		ProviderID: p.ProviderID,
		Name:       p.Name,
		ShortName:  p.ShortName,
		InvAddr1:   p.InvAddr1,
		InvAddr2:   p.InvAddr2,
		InvCity:    p.InvCity,
		InvState:   p.InvState,
		InvZip:     p.InvZip,
		Email:      p.Email,
		LedgerCode: p.LedgerCode,
	}
}

// ToProviderResponses converts a slice of domain providers.
func ToProviderResponses(providers []domain.Provider) []ProviderResponse {
	responses := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		responses = append(responses, ToProviderResponse(p))
	}
	return responses
}
