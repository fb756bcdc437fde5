package api

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"corplookup/internal/models"
)

// ControllerFinder runs the name search and officer aggregation.
type ControllerFinder interface {
	FindControllers(ctx context.Context, companyName, jurisdictionHint string) models.ControllerLookupResult
}

// SearchHandler handles controller lookups via JSON API.
type SearchHandler struct {
	finder ControllerFinder
}

// NewSearchHandler creates a new API search handler.
func NewSearchHandler(finder ControllerFinder) *SearchHandler {
	return &SearchHandler{finder: finder}
}

// Search handles POST /api/search: look up companies matching a name and
// return each candidate with its officers.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	var body struct {
		CompanyName  string `json:"company_name"`
		Jurisdiction string `json:"jurisdiction"`
	}
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	if body.CompanyName == "" {
		return jsonError(c, fiber.StatusBadRequest, "Company name is required")
	}

	result := h.finder.FindControllers(c.Context(), body.CompanyName, body.Jurisdiction)
	return c.JSON(result)
}
