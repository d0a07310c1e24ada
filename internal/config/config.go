// Package config handles configuration for the demo CLIs, applying defaults,
// a .env file / environment variables, an optional JSON file, and
// command-line flags, in that order. Later sources take precedence.
package config

import (
	"time"

	"github.com/imagezebra/imagezebra-go/internal/client"
)

// Config holds runtime settings for the ImageZebra demo CLIs.
//
// Fields:
//   - BaseURL: API root, e.g. "https://imagezebra.com/api".
//   - ApplicationKey / Username / Password: account credentials, normally
//     supplied via IMAGEZEBRA_* environment variables.
//   - PollInterval / MaxPollAttempts: fixed-interval polling policy; the
//     overall wait is bounded by their product.
//   - RequestTimeout: per-request timeout applied to every HTTP call.
type Config struct {
	BaseURL         string
	ApplicationKey  string
	Username        string
	Password        string
	PollInterval    time.Duration
	MaxPollAttempts uint64
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with the production API endpoint and the default
// polling policy. Credentials have no defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = client.DefaultBaseURL
	c.PollInterval = client.DefaultPollInterval
	c.MaxPollAttempts = client.DefaultMaxPollAttempts
	c.RequestTimeout = client.DefaultRequestTimeout
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), a JSON file (if one
// was named with -c/-config) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
