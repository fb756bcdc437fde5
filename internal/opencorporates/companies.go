package opencorporates

import (
	"context"
	"net/url"

	"corplookup/internal/models"
)

// The registry wraps every payload in a "results" envelope and every company
// and officer in a one-key object; these types exist to peel that off.

type searchResponse struct {
	Results struct {
		Companies []companyEnvelope `json:"companies"`
	} `json:"results"`
}

type companyEnvelope struct {
	Company models.Company `json:"company"`
}

type companyResponse struct {
	Results struct {
		Company models.Company `json:"company"`
	} `json:"results"`
}

type officersResponse struct {
	Results struct {
		Officers []models.OfficerEntry `json:"officers"`
	} `json:"results"`
}

// SearchCompanies looks up companies by name, optionally filtered to a single
// jurisdiction. The returned slice preserves the registry's own ranking; no
// re-ordering is applied.
func (c *Client) SearchCompanies(ctx context.Context, query, jurisdictionCode string) ([]models.Company, error) {
	params := url.Values{}
	params.Set("q", query)
	if jurisdictionCode != "" {
		params.Set("jurisdiction_code", jurisdictionCode)
	}

	var resp searchResponse
	if err := c.get(ctx, "search", "companies/search", params, &resp); err != nil {
		return nil, err
	}

	companies := make([]models.Company, 0, len(resp.Results.Companies))
	for _, hit := range resp.Results.Companies {
		companies = append(companies, hit.Company)
	}
	return companies, nil
}

// GetCompanyDetails fetches a single company record by its registry identity.
func (c *Client) GetCompanyDetails(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error) {
	path := "companies/" + url.PathEscape(jurisdictionCode) + "/" + url.PathEscape(companyNumber)

	var resp companyResponse
	if err := c.get(ctx, "company", path, nil, &resp); err != nil {
		return models.Company{}, err
	}
	return resp.Results.Company, nil
}

// GetCompanyOfficers fetches the officer records filed for a company.
func (c *Client) GetCompanyOfficers(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error) {
	path := "companies/" + url.PathEscape(jurisdictionCode) + "/" + url.PathEscape(companyNumber) + "/officers"

	var resp officersResponse
	if err := c.get(ctx, "officers", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results.Officers, nil
}
