// Package lookup aggregates registry data into controller-lookup results:
// search for a company by name, take the top candidates, and enrich each with
// its officer records.
package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"corplookup/internal/jurisdiction"
	"corplookup/internal/metrics"
	"corplookup/internal/models"
)

// maxCandidates caps how many search hits are enriched with officer data,
// regardless of how many the registry returns.
const maxCandidates = 3

// Registry is the slice of the registry client the lookup needs.
type Registry interface {
	SearchCompanies(ctx context.Context, query, jurisdictionCode string) ([]models.Company, error)
	GetCompanyOfficers(ctx context.Context, jurisdictionCode, companyNumber string) ([]models.OfficerEntry, error)
}

// Service orchestrates the search, candidate selection and officer fan-out.
type Service struct {
	registry Registry
	resolver *jurisdiction.Resolver
}

// New creates a lookup service over a registry client and a jurisdiction
// resolver.
func New(registry Registry, resolver *jurisdiction.Resolver) *Service {
	return &Service{registry: registry, resolver: resolver}
}

// FindControllers looks up companies matching companyName and returns each
// candidate's registration record together with its officers.
//
// The jurisdiction hint is best-effort: hints the resolver does not recognize
// mean the search runs unfiltered. Upstream failures never surface as errors;
// a failed search reads as "no companies found" and a failed officer fetch as
// "no officer information available", so the caller always gets a well-formed
// result.
func (s *Service) FindControllers(ctx context.Context, companyName, jurisdictionHint string) models.ControllerLookupResult {
	jurisdictionCode, _ := s.resolver.Resolve(jurisdictionHint)

	candidates, err := s.registry.SearchCompanies(ctx, companyName, jurisdictionCode)
	if err != nil {
		// Transport and HTTP errors collapse into the empty candidate list;
		// the client has already logged the details.
		candidates = nil
	}
	if len(candidates) == 0 {
		metrics.RecordLookup(models.StatusNotFound)
		return models.ControllerLookupResult{
			Status:  models.StatusNotFound,
			Message: fmt.Sprintf("No companies found matching '%s'", companyName),
			Results: []models.CompanyWithOfficers{},
		}
	}

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	// Officer fetches for the candidates are independent, so they run
	// concurrently. entries is index-addressed to keep the output in the
	// registry's ranking order; skipped candidates leave a nil hole that the
	// assembly pass below compacts away.
	entries := make([]*models.CompanyWithOfficers, len(candidates))
	skipped := 0

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		if candidate.JurisdictionCode == "" || candidate.CompanyNumber == "" {
			skipped++
			continue
		}
		g.Go(func() error {
			entries[i] = s.resolveCandidate(gctx, candidate)
			return nil
		})
	}
	// Workers absorb their own failures, so Wait only synchronizes.
	_ = g.Wait()

	results := make([]models.CompanyWithOfficers, 0, len(candidates))
	for _, entry := range entries {
		if entry != nil {
			results = append(results, *entry)
		}
	}

	metrics.RecordSkippedCandidates(skipped)

	status := models.StatusPartialResults
	if len(results) > 0 {
		status = models.StatusSuccess
	}
	metrics.RecordLookup(status)

	slog.Info("controller lookup complete",
		"company", companyName,
		"status", status,
		"matches", len(results),
		"skipped", skipped)

	return models.ControllerLookupResult{
		Status:  status,
		Message: fmt.Sprintf("Found %d potential matches for '%s'", len(results), companyName),
		Results: results,
	}
}

// resolveCandidate builds the aggregated entry for one candidate. Officer
// lookup failures degrade to an empty officer list; the company match itself
// is still worth returning.
func (s *Service) resolveCandidate(ctx context.Context, candidate models.Company) *models.CompanyWithOfficers {
	officers, err := s.registry.GetCompanyOfficers(ctx, candidate.JurisdictionCode, candidate.CompanyNumber)
	if err != nil {
		slog.Warn("officer lookup failed",
			"jurisdiction", candidate.JurisdictionCode,
			"company_number", candidate.CompanyNumber,
			"error", err)
	}
	if officers == nil {
		officers = []models.OfficerEntry{}
	}

	return &models.CompanyWithOfficers{
		CompanyName:       candidate.Name,
		Jurisdiction:      candidate.JurisdictionCode,
		CompanyNumber:     candidate.CompanyNumber,
		IncorporationDate: candidate.IncorporationDate,
		CompanyType:       candidate.CompanyType,
		CurrentStatus:     candidate.CurrentStatus,
		Officers:          officers,
	}
}
