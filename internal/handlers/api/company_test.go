package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"corplookup/internal/models"
)

type fakeDirectory struct {
	detailsFn  func(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error)
	officersFn func(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error)
}

func (f *fakeDirectory) GetCompanyDetails(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error) {
	if f.detailsFn == nil {
		return models.Company{}, nil
	}
	return f.detailsFn(ctx, jurisdictionCode, companyNumber)
}

func (f *fakeDirectory) GetCompanyOfficers(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error) {
	if f.officersFn == nil {
		return []models.OfficerEntry{}, nil
	}
	return f.officersFn(ctx, jurisdictionCode, companyNumber)
}

func newCompanyApp(directory CompanyDirectory) *fiber.App {
	app := fiber.New()
	app.Get("/api/company_details", NewCompanyHandler(directory).Details)
	return app
}

func getDetails(t *testing.T, app *fiber.App, query string) *http.Response {
	t.Helper()

	req, _ := http.NewRequest("GET", "/api/company_details"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestDetailsRequiresParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no params", ""},
		{"jurisdiction only", "?jurisdiction=us_ca"},
		{"company number only", "?company_number=C123"},
		{"empty values", "?jurisdiction=&company_number="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newCompanyApp(&fakeDirectory{})

			resp := getDetails(t, app, tt.query)

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
			if got := decodeError(t, resp); got != "Jurisdiction and company number are required" {
				t.Errorf("error = %q, want %q", got, "Jurisdiction and company number are required")
			}
		})
	}
}

func TestDetailsReturnsCompanyAndOfficers(t *testing.T) {
	date := "2019-05-14"
	directory := &fakeDirectory{
		detailsFn: func(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error) {
			if jurisdictionCode != "us_ca" || companyNumber != "C123" {
				t.Errorf("directory got (%q, %q), want (%q, %q)", jurisdictionCode, companyNumber, "us_ca", "C123")
			}
			return models.Company{
				Name:              "ACME INC",
				JurisdictionCode:  "us_ca",
				CompanyNumber:     "C123",
				IncorporationDate: &date,
			}, nil
		},
		officersFn: func(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error) {
			return []models.OfficerEntry{
				{Officer: models.Officer{Name: "JANE ROE", Position: "agent"}},
			}, nil
		},
	}
	app := newCompanyApp(directory)

	resp := getDetails(t, app, "?jurisdiction=us_ca&company_number=C123")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body models.CompanyDetailsResponse
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", data, err)
	}

	if body.Company.Name != "ACME INC" {
		t.Errorf("company name = %q, want %q", body.Company.Name, "ACME INC")
	}
	if body.Company.IncorporationDate == nil || *body.Company.IncorporationDate != date {
		t.Errorf("incorporation date = %v, want %q", body.Company.IncorporationDate, date)
	}
	if len(body.Officers) != 1 || body.Officers[0].Officer.Name != "JANE ROE" {
		t.Errorf("officers = %v, want one entry for JANE ROE", body.Officers)
	}
}

func TestDetailsAbsorbsUpstreamFailures(t *testing.T) {
	directory := &fakeDirectory{
		detailsFn: func(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error) {
			return models.Company{}, errors.New("registry returned status 404 for companies/us_ca/C123")
		},
		officersFn: func(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error) {
			return nil, errors.New("registry returned status 404 for officers")
		},
	}
	app := newCompanyApp(directory)

	resp := getDetails(t, app, "?jurisdiction=us_ca&company_number=C123")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), `"officers":[]`) {
		t.Errorf("response %s missing empty officers list", data)
	}

	var body models.CompanyDetailsResponse
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", data, err)
	}
	if body.Company.Name != "" {
		t.Errorf("company name = %q, want empty record", body.Company.Name)
	}
}
