// Package config loads application configuration from environment variables,
// with optional .env file support for local development.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the API.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Database connection settings
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"tripnote"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// AppPassword is the shared secret checked on every /api request.
	// Empty disables the auth gate (local development).
	AppPassword string `env:"APP_PASSWORD"`

	// CORSOrigins is a comma-separated allow-list, or "*" for any origin.
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Flight lookup provider credentials
	FlightAPIKey     string `env:"FLIGHT_API_KEY"`
	FlightAPIBaseURL string `env:"FLIGHT_API_BASE_URL" envDefault:"https://api.aviationstack.com"`

	NewRelicLicenseKey string `env:"NEW_RELIC_LICENSE_KEY"`
}

var cfg *Config

// Load reads configuration from the environment. A missing .env file is not
// an error; real environment variables always win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	cfg = c
	return c, nil
}

// Get returns the loaded configuration. Load must have been called first;
// tests may call Set to inject a config directly.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}

// Set replaces the loaded configuration. Intended for tests.
func Set(c *Config) {
	cfg = c
}

// DatabaseDSN builds the lib/pq connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// AllowedOrigins splits the configured CORS origin list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
