// Package config loads server configuration from the environment into an
// explicit value that is threaded through the server. Nothing here is
// captured at import time; origin resolution receives the configured value
// as a parameter so it stays a pure function of its inputs.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int
	// DatabaseURL is the PostgreSQL connection URL. Required.
	DatabaseURL string
	// SiteURL is the explicitly configured canonical origin. Optional; when
	// empty or a placeholder domain, the origin is derived per request.
	SiteURL string
}

// Load reads configuration from the environment.
// PORT defaults to 8080; DATABASE_URL is required; SITE_URL is optional.
func Load() (Config, error) {
	cfg := Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SiteURL:     os.Getenv("SITE_URL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		cfg.Port = n
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}
