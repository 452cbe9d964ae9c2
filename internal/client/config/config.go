// Package config loads runtime settings for the dashboard CLI. Sources are
// layered the usual way: defaults, then an optional JSON file (-c/-config),
// then command-line flags, with later sources winning.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the dashctl binary.
//
// Fields:
//   - ServerBaseURL: base URL of the dashboard HTTP API.
//   - RequestTimeout: client-side deadline for a single API request.
//   - DownloadDir: where export files are written.
//   - SessionFile: path of the persisted session (token, locale override).
type Config struct {
	ServerBaseURL  string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
	DownloadDir    string        `validate:"required"`
	SessionFile    string        `validate:"required"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DownloadDir = "."
	c.SessionFile = "dashboard-session.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present), and validates the
// result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
