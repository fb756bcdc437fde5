package handlers

import (
	"github.com/gofiber/fiber/v3"

	"corplookup/internal/jobs"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	probe *jobs.RegistryProbe
}

// NewProbeHandler creates a new probe handler. probe may be nil when the
// background registry probe is disabled; readiness then only reflects that
// the process is serving.
func NewProbeHandler(probe *jobs.RegistryProbe) *ProbeHandler {
	return &ProbeHandler{probe: probe}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK unless the registry probe reports the upstream unreachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.probe != nil && !h.probe.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "registry unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
