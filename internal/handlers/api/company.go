package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"corplookup/internal/models"
)

// CompanyDirectory fetches individual company records from the registry.
type CompanyDirectory interface {
	GetCompanyDetails(ctx context.Context, jurisdictionCode, companyNumber string) (models.Company, error)
	GetCompanyOfficers(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error)
}

// CompanyHandler handles direct company record fetches via JSON API.
type CompanyHandler struct {
	directory CompanyDirectory
}

// NewCompanyHandler creates a new API company handler.
func NewCompanyHandler(directory CompanyDirectory) *CompanyHandler {
	return &CompanyHandler{directory: directory}
}

// Details handles GET /api/company_details: fetch one company and its
// officers by exact registry identity.
func (h *CompanyHandler) Details(c fiber.Ctx) error {
	jurisdiction := c.Query("jurisdiction", "")
	companyNumber := c.Query("company_number", "")

	if jurisdiction == "" || companyNumber == "" {
		return jsonError(c, fiber.StatusBadRequest, "Jurisdiction and company number are required")
	}

	// Upstream failures stay success-shaped: an empty company record and an
	// empty officer list, never an error response.
	company, err := h.directory.GetCompanyDetails(c.Context(), jurisdiction, companyNumber)
	if err != nil {
		company = models.Company{}
	}

	officers, err := h.directory.GetCompanyOfficers(c.Context(), jurisdiction, companyNumber)
	if err != nil || officers == nil {
		officers = []models.OfficerEntry{}
	}

	return c.JSON(models.CompanyDetailsResponse{
		Company:  company,
		Officers: officers,
	})
}
