// Package config loads the dashboard settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the application.
type Config struct {
	// PricingAPIURL is the base URL of the remote pricing API, without a
	// trailing slash.
	PricingAPIURL string

	// PricingAPITimeout bounds every individual call to the pricing API.
	PricingAPITimeout time.Duration

	// SeedAdminPassword and SeedAnalystPassword are only used the first
	// time the app starts against an empty database.
	SeedAdminPassword   string
	SeedAnalystPassword string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win over
// .env entries.
func Load() (Config, error) {
	// Ignore a missing .env; containerized deployments set real env vars.
	_ = godotenv.Load()

	cfg := Config{
		PricingAPIURL:       os.Getenv("PRICING_API_URL"),
		PricingAPITimeout:   30 * time.Second,
		SeedAdminPassword:   getenvDefault("SEED_ADMIN_PASSWORD", "cambiar-admin-123"),
		SeedAnalystPassword: getenvDefault("SEED_ANALYST_PASSWORD", "cambiar-analista-123"),
	}

	if cfg.PricingAPIURL == "" {
		return Config{}, fmt.Errorf("config: PRICING_API_URL is required")
	}

	if raw := os.Getenv("PRICING_API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PRICING_API_TIMEOUT %q: %w", raw, err)
		}
		cfg.PricingAPITimeout = d
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
