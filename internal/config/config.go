package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	LogLevel        int           `env:"LOG_LEVEL" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Database        Database
	RateLimit       RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Database contains store connection parameters.
type Database struct {
	URL      string `env:"DATABASE_URL"`
	MongoURI string `env:"MONGO_URI"`
	Path     string `env:"DATABASE_PATH" envDefault:"exercise-tracker.db"`
	Name     string `env:"MONGO_DATABASE" envDefault:"exercise_tracker"`
}

// DSN returns the first connection string set among DATABASE_URL and
// MONGO_URI, falling back to the SQLite file path.
func (d Database) DSN() string {
	switch {
	case d.URL != "":
		return d.URL
	case d.MongoURI != "":
		return d.MongoURI
	default:
		return d.Path
	}
}

// RateLimit contains per-client request limits. RPS <= 0 disables limiting.
type RateLimit struct {
	RPS     float64       `env:"RPS" envDefault:"0"`
	Burst   int           `env:"BURST" envDefault:"10"`
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"10m"`
}

// Enabled reports whether requests should be rate limited.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RateLimit.Enabled() && cfg.RateLimit.Burst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimit.Burst)
	}

	return &cfg, nil
}
