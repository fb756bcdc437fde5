package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "corplookup_lookups_total",
		Help: "Controller lookups by result status.",
	}, []string{"status"})

	skippedCandidatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "corplookup_lookup_candidates_skipped_total",
		Help: "Search candidates dropped for missing jurisdiction or company number.",
	})

	registryRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "corplookup_registry_requests_total",
		Help: "Outbound registry API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	registryUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "corplookup_registry_up",
		Help: "Whether the last registry reachability probe succeeded.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "corplookup_http_requests_total",
		Help: "Inbound HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "corplookup_http_request_duration_seconds",
		Help:    "Inbound HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

var registerOnce sync.Once

// Register installs all collectors into the default prometheus registry.
// Call once at startup, before the server accepts traffic.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			lookupsTotal,
			skippedCandidatesTotal,
			registryRequestsTotal,
			registryUp,
			httpRequestsTotal,
			httpRequestDuration,
		)
	})
}

// RecordLookup counts one controller lookup outcome.
func RecordLookup(status string) {
	lookupsTotal.WithLabelValues(status).Inc()
}

// RecordSkippedCandidates counts candidates silently dropped during
// aggregation. The lookup result does not report them; the counter is the
// only place the drops are visible.
func RecordSkippedCandidates(n int) {
	if n > 0 {
		skippedCandidatesTotal.Add(float64(n))
	}
}

// RecordRegistryRequest counts one outbound registry call.
func RecordRegistryRequest(endpoint, outcome string) {
	registryRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// SetRegistryUp records the latest reachability probe result.
func SetRegistryUp(up bool) {
	if up {
		registryUp.Set(1)
	} else {
		registryUp.Set(0)
	}
}

// RecordHTTPRequest counts one served request and observes its latency.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
