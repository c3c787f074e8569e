// Package config loads service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the server.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":3000"`

	// DBPath is the path to the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"./data/groups.db"`

	// JWTSecret signs session tokens. Required; there is no safe default.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is how long issued session tokens stay valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}
