// Package config loads process configuration from the environment.
//
// Configuration is read once at startup and passed explicitly into the
// components that need it; nothing looks up environment variables inside
// request-handling logic.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

// Config holds the process-level configuration.
type Config struct {
	// APIKey is the Fathom API key. Its absence is a fatal startup
	// condition, not a per-call error.
	APIKey string `env:"FATHOM_API_KEY,required,notEmpty"`

	// BaseURL overrides the Fathom API base URL. Mainly for testing and
	// self-hosted proxies.
	BaseURL string `env:"FATHOM_BASE_URL"`

	// ExportDir is the default directory for markdown exports.
	ExportDir string `env:"FATHOM_EXPORT_DIR" envDefault:"./fathom-exports"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fathom.DefaultBaseURL
	}
	return cfg, nil
}
