package models

// Lookup status classifications.
const (
	StatusSuccess        = "success"
	StatusPartialResults = "partial_results"
	StatusNotFound       = "not_found"
)

// CompanyWithOfficers is one aggregated candidate match: the company fields
// flattened alongside its officer records.
type CompanyWithOfficers struct {
	CompanyName       string         `json:"company_name"`
	Jurisdiction      string         `json:"jurisdiction"`
	CompanyNumber     string         `json:"company_number"`
	IncorporationDate *string        `json:"incorporation_date"`
	CompanyType       *string        `json:"company_type"`
	CurrentStatus     *string        `json:"current_status"`
	Officers          []OfficerEntry `json:"officers"`
}

// ControllerLookupResult is the aggregate answer for a controller lookup.
//
// Status is StatusNotFound when the search produced no candidates,
// StatusSuccess when at least one candidate fully resolved, and
// StatusPartialResults when candidates existed but none could be resolved.
// Results never holds more than three entries.
type ControllerLookupResult struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Results []CompanyWithOfficers `json:"results"`
}

// CompanyDetailsResponse is the payload for the company-details endpoint:
// the company record plus its officers, mirrored from the registry.
type CompanyDetailsResponse struct {
	Company  Company        `json:"company"`
	Officers []OfficerEntry `json:"officers"`
}
