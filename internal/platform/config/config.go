// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first (if present) via 'joho/godotenv'; real environment variables win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Venue delete policies.
const (
	// DeletePolicyCascade removes a venue's shows together with the venue.
	DeletePolicyCascade = "cascade"

	// DeletePolicyRestrict refuses to delete a venue that still owns shows.
	DeletePolicyRestrict = "restrict"
)

// # Configuration Schema

// Config holds all runtime configuration for the Fyyur server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis), backing one-time flash notices.
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// FlashTTL bounds how long an unread flash notice survives.
	FlashTTL time.Duration `env:"FLASH_TTL" envDefault:"5m"`

	// VenueDeletePolicy decides what happens to a venue's shows on delete.
	VenueDeletePolicy string `env:"VENUE_DELETE_POLICY" envDefault:"cascade"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return Parse()
}

// SeedConfig is the subset of settings the seed command needs.
type SeedConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

// LoadSeed reads an optional .env file and parses the seed command settings.
func LoadSeed() (*SeedConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &SeedConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// A missing .env file is normal outside local development.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to read .env file: %w", err)
	}
	return nil
}

// Parse maps the current environment onto a [Config] and validates it.
func Parse() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.VenueDeletePolicy = strings.ToLower(strings.TrimSpace(c.VenueDeletePolicy))
	switch c.VenueDeletePolicy {
	case DeletePolicyCascade, DeletePolicyRestrict:
	default:
		return fmt.Errorf("config: VENUE_DELETE_POLICY must be %q or %q, got %q",
			DeletePolicyCascade, DeletePolicyRestrict, c.VenueDeletePolicy)
	}

	if c.FlashTTL <= 0 {
		return fmt.Errorf("config: FLASH_TTL must be positive, got %s", c.FlashTTL)
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginAllowed reports whether a browser origin may call the API cross-site.
// Every origin is allowed in development.
func (c *Config) OriginAllowed(origin string) bool {
	if c.IsDevelopment() {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
