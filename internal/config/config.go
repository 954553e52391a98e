// Package config loads service settings from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are read, in order, before parsing the environment.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Config holds every setting the service reads at start-up.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"books.db"`

	// Editor auth is enabled only when both are set.
	EditorPasswordHash string `env:"EDITOR_PASSWORD_HASH"`
	JWTSecret          string `env:"JWT_SECRET"`
	BcryptCost         int    `env:"BCRYPT_COST" envDefault:"12"`

	CookieSecure bool       `env:"COOKIE_SECURE" envDefault:"true"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (DefaultEnvFiles when none are given) and
// parses the environment into a validated Config. Variables already present
// in the process environment win over values from files. Missing files are
// skipped; unreadable or malformed ones are an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if (c.EditorPasswordHash == "") != (c.JWTSecret == "") {
		return errors.New("EDITOR_PASSWORD_HASH and JWT_SECRET must be set together")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	return nil
}

// EditorAuthEnabled reports whether write routes require an editor token.
func (c *Config) EditorAuthEnabled() bool {
	return c.EditorPasswordHash != "" && c.JWTSecret != ""
}
