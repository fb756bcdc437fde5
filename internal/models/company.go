package models

// Company is a registration record as the registry reports it.
// Identity is the (jurisdiction_code, company_number) pair, not the name;
// names are ambiguous, registration numbers are not.
type Company struct {
	Name              string  `json:"name"`
	JurisdictionCode  string  `json:"jurisdiction_code"`
	CompanyNumber     string  `json:"company_number"`
	IncorporationDate *string `json:"incorporation_date"`
	CompanyType       *string `json:"company_type"`
	CurrentStatus     *string `json:"current_status"`
}

// Officer is a person or entity holding a registered role (director,
// secretary, etc.) in a company's official filings.
type Officer struct {
	Name      string `json:"name,omitempty"`
	Position  string `json:"position,omitempty"`
	StartDate string `json:"start_date,omitempty"`
}

// OfficerEntry preserves the registry's {"officer": {...}} wrapper so our
// responses carry the same shape the registry returns.
type OfficerEntry struct {
	Officer Officer `json:"officer"`
}
