// Package opencorporates is a thin client for an OpenCorporates-compatible
// corporate-registry API. It issues single-attempt GET requests, appends the
// configured API token, and reports every failure as an error value; callers
// decide how much of a failure they want to absorb.
package opencorporates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"corplookup/internal/metrics"
)

const userAgent = "corplookup/1.0"

// maxErrorBody bounds how much of an upstream error body is read for logging.
const maxErrorBody = 2048

// Client talks to the registry API. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

// New creates a registry client. An empty apiToken means requests go out
// unauthenticated, subject to the registry's own limits for anonymous use.
func New(baseURL, apiToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// get issues a single GET against the registry and decodes a 2xx JSON body
// into out. No retries, no caching. The endpoint label keeps metrics free of
// per-company path segments.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.apiToken != "" {
		query.Set("api_token", c.apiToken)
	}

	reqURL := c.baseURL + "/" + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		metrics.RecordRegistryRequest(endpoint, "network_error")
		return fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordRegistryRequest(endpoint, "network_error")
		log.Printf("Registry request failed: %s: %v", path, err)
		return fmt.Errorf("registry request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordRegistryRequest(endpoint, "http_error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("Registry request failed: %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
		return fmt.Errorf("registry returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordRegistryRequest(endpoint, "decode_error")
		log.Printf("Registry response malformed: %s: %v", path, err)
		return fmt.Errorf("decode registry response for %s: %w", path, err)
	}

	metrics.RecordRegistryRequest(endpoint, "ok")
	return nil
}

// Ping checks registry reachability. Any HTTP response, including an error
// status, means the registry host is up; only transport failures count as
// down.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("build registry probe: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registry unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return nil
}
