package handlers

import (
	"github.com/gofiber/fiber/v3"

	"corplookup/internal/config"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index renders the search form page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":     h.cfg.SiteTitle,
		"SiteTitle": h.cfg.SiteTitle,
	})
}
