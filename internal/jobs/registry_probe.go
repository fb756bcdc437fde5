package jobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"corplookup/internal/metrics"
)

// probeTimeout bounds a single reachability check independently of the
// probe interval.
const probeTimeout = 10 * time.Second

// Pinger is the slice of the registry client the probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegistryProbe periodically checks that the registry API is reachable and
// publishes the result for readiness checks and metrics. Lookups never wait
// on it; a down registry degrades responses, it does not block them.
type RegistryProbe struct {
	pinger   Pinger
	interval time.Duration
	healthy  atomic.Bool
}

// NewRegistryProbe creates a registry probe. It reports healthy until the
// first check completes so startup ordering doesn't flap readiness.
func NewRegistryProbe(pinger Pinger, interval time.Duration) *RegistryProbe {
	p := &RegistryProbe{
		pinger:   pinger,
		interval: interval,
	}
	p.healthy.Store(true)
	return p
}

// Start begins the probe loop and blocks until ctx is cancelled. Run it on
// its own goroutine.
func (p *RegistryProbe) Start(ctx context.Context) {
	log.Printf("Registry probe started (interval: %v)", p.interval)

	// Run immediately on start
	p.check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Registry probe stopped")
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

// Healthy reports the result of the most recent check.
func (p *RegistryProbe) Healthy() bool {
	return p.healthy.Load()
}

func (p *RegistryProbe) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.pinger.Ping(ctx)
	up := err == nil

	p.healthy.Store(up)
	metrics.SetRegistryUp(up)

	if err != nil {
		log.Printf("Registry probe: %v", err)
	}
}
