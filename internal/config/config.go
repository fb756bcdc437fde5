package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins; empty falls back to BaseURL

	// Registry (OpenCorporates-compatible API)
	RegistryBaseURL string        // env: OPENCORPORATES_BASE_URL
	RegistryToken   string        // env: OPENCORPORATES_API_TOKEN, empty means unauthenticated
	RegistryTimeout time.Duration // env: REGISTRY_TIMEOUT, per-request upper bound

	// Background registry reachability probe; zero disables it.
	ProbeInterval time.Duration // env: PROBE_INTERVAL

	// Jurisdiction table overrides
	JurisdictionsFile string // env: JURISDICTIONS_FILE, optional YAML file

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Company Controller Lookup"
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present, matching
// the deployment habit of keeping the API token out of the shell environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RegistryBaseURL: getEnv("OPENCORPORATES_BASE_URL", "https://api.opencorporates.com/v0.4"),
		RegistryToken:   getEnv("OPENCORPORATES_API_TOKEN", ""),
		RegistryTimeout: getEnvDuration("REGISTRY_TIMEOUT", 10*time.Second),

		ProbeInterval: getEnvDuration("PROBE_INTERVAL", 5*time.Minute),

		JurisdictionsFile: getEnv("JURISDICTIONS_FILE", "jurisdictions.yaml"),

		SiteTitle: getEnv("SITE_TITLE", "Company Controller Lookup"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasRegistryToken reports whether an API token is configured for the registry.
func (c *Config) HasRegistryToken() bool {
	return c.RegistryToken != ""
}
