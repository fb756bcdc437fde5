package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"corplookup/internal/handlers"
	"corplookup/internal/handlers/api"
	"corplookup/internal/jobs"
	"corplookup/internal/jurisdiction"
	"corplookup/internal/lookup"
	"corplookup/internal/opencorporates"
)

// RegisterRoutes wires the registry client and resolver into handlers and
// registers all application routes. probe may be nil when the background
// reachability probe is disabled.
func (s *Server) RegisterRoutes(registry *opencorporates.Client, resolver *jurisdiction.Resolver, probe *jobs.RegistryProbe) {
	finder := lookup.New(registry, resolver)

	pageHandler := handlers.NewPageHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(probe)
	searchHandler := api.NewSearchHandler(finder)
	companyHandler := api.NewCompanyHandler(registry)

	// Frontend
	s.App.Get("/", pageHandler.Index)

	// JSON API
	s.App.Post("/api/search", searchHandler.Search)
	s.App.Get("/api/company_details", companyHandler.Details)

	// Operations
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
