package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"corplookup/internal/config"
	"corplookup/internal/jobs"
	"corplookup/internal/jurisdiction"
	"corplookup/internal/metrics"
	"corplookup/internal/opencorporates"
	"corplookup/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	if !cfg.HasRegistryToken() {
		log.Println("Warning: no OpenCorporates API token configured. Requests run unauthenticated and may be rejected or rate limited; set OPENCORPORATES_API_TOKEN to authenticate.")
	}

	table, err := config.LoadJurisdictions(cfg.JurisdictionsFile)
	if err != nil {
		log.Fatalf("Failed to load jurisdiction table: %v", err)
	}
	resolver := jurisdiction.NewResolver(table)

	registry := opencorporates.New(cfg.RegistryBaseURL, cfg.RegistryToken, cfg.RegistryTimeout)

	metrics.Register()

	var probe *jobs.RegistryProbe
	if cfg.ProbeInterval > 0 {
		probe = jobs.NewRegistryProbe(registry, cfg.ProbeInterval)
		go probe.Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(registry, resolver, probe)

	// Start server in a goroutine so it doesn't block signal handling
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
