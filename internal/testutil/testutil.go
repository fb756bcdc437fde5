// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"corplookup/internal/models"
	"corplookup/internal/opencorporates"
)

// RegistryStub is an in-process fake of the company registry API. Tests
// register canned JSON responses per request path and point a client at
// the stub's URL.
type RegistryStub struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]stubResponse
	calls     map[string]int
}

type stubResponse struct {
	status int
	body   any
}

// NewRegistryStub starts a fake registry server. The server is shut
// down automatically when the test finishes.
func NewRegistryStub(t *testing.T) *RegistryStub {
	t.Helper()

	s := &RegistryStub{
		t:         t,
		responses: make(map[string]stubResponse),
		calls:     make(map[string]int),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.server.Close)

	return s
}

// Respond registers a canned response for the given request path. The
// body is serialized as JSON. Paths without a registered response get a
// plain 404.
func (s *RegistryStub) Respond(path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = stubResponse{status: status, body: body}
}

// URL returns the base URL of the fake registry.
func (s *RegistryStub) URL() string {
	return s.server.URL
}

// Calls returns how many requests hit the given path.
func (s *RegistryStub) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// Client returns a registry client pointed at the stub.
func (s *RegistryStub) Client(token string) *opencorporates.Client {
	return opencorporates.New(s.server.URL, token, 5*time.Second)
}

func (s *RegistryStub) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls[r.URL.Path]++
	resp, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != nil {
		if err := json.NewEncoder(w).Encode(resp.body); err != nil {
			s.t.Errorf("failed to encode stub response: %v", err)
		}
	}
}

// SearchEnvelope wraps companies in the registry search response shape.
func SearchEnvelope(companies ...models.Company) map[string]any {
	hits := make([]map[string]any, 0, len(companies))
	for _, c := range companies {
		hits = append(hits, map[string]any{"company": c})
	}
	return map[string]any{"results": map[string]any{"companies": hits}}
}

// CompanyEnvelope wraps a company in the registry company response shape.
func CompanyEnvelope(c models.Company) map[string]any {
	return map[string]any{"results": map[string]any{"company": c}}
}

// OfficersEnvelope wraps officer entries in the registry officers
// response shape.
func OfficersEnvelope(officers ...models.OfficerEntry) map[string]any {
	entries := officers
	if entries == nil {
		entries = []models.OfficerEntry{}
	}
	return map[string]any{"results": map[string]any{"officers": entries}}
}

// StrPtr returns a pointer to s, for building optional string fields.
func StrPtr(s string) *string {
	return &s
}
