package domain

// Provider is a billing intermediary grouping multiple accounts, e.g. an
// institution billed with per-provider subtotals.
type Provider struct {
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
	AuditFields
}

// DisplayName returns the short name when set, falling back to the full name.
func (p Provider) DisplayName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.Name
}
