package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"corplookup/internal/models"
)

type fakeFinder struct {
	gotName string
	gotHint string
	result  models.ControllerLookupResult
}

func (f *fakeFinder) FindControllers(ctx context.Context, companyName, jurisdictionHint string) models.ControllerLookupResult {
	f.gotName = companyName
	f.gotHint = jurisdictionHint
	return f.result
}

func newSearchApp(finder ControllerFinder) *fiber.App {
	app := fiber.New()
	app.Post("/api/search", NewSearchHandler(finder).Search)
	return app
}

func postSearch(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest("POST", "/api/search", reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", data, err)
	}
	return body.Error
}

func TestSearchRequiresCompanyName(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"empty object", "{}"},
		{"empty company name", `{"company_name":""}`},
		{"jurisdiction only", `{"jurisdiction":"ca"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newSearchApp(&fakeFinder{})

			resp := postSearch(t, app, tt.body)

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
			if got := decodeError(t, resp); got != "Company name is required" {
				t.Errorf("error = %q, want %q", got, "Company name is required")
			}
		})
	}
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	app := newSearchApp(&fakeFinder{})

	resp := postSearch(t, app, `{"company_name": `)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if got := decodeError(t, resp); got != "Invalid request body" {
		t.Errorf("error = %q, want %q", got, "Invalid request body")
	}
}

func TestSearchReturnsFinderResult(t *testing.T) {
	finder := &fakeFinder{
		result: models.ControllerLookupResult{
			Status:  models.StatusSuccess,
			Message: "Found 1 potential matches for 'ACME'",
			Results: []models.CompanyWithOfficers{
				{
					CompanyName:   "ACME INC",
					Jurisdiction:  "us_ca",
					CompanyNumber: "C123",
					Officers: []models.OfficerEntry{
						{Officer: models.Officer{Name: "JANE ROE", Position: "agent"}},
					},
				},
			},
		},
	}
	app := newSearchApp(finder)

	resp := postSearch(t, app, `{"company_name":"ACME","jurisdiction":"California"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if finder.gotName != "ACME" {
		t.Errorf("finder got company name %q, want %q", finder.gotName, "ACME")
	}
	if finder.gotHint != "California" {
		t.Errorf("finder got jurisdiction hint %q, want %q", finder.gotHint, "California")
	}

	var result models.ControllerLookupResult
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to decode response %q: %v", data, err)
	}

	if result.Status != models.StatusSuccess {
		t.Errorf("status = %q, want %q", result.Status, models.StatusSuccess)
	}
	if len(result.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(result.Results))
	}
	if result.Results[0].Officers[0].Officer.Name != "JANE ROE" {
		t.Errorf("officer = %q, want %q", result.Results[0].Officers[0].Officer.Name, "JANE ROE")
	}
}
