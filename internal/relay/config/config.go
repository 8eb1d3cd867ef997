// Package config assembles the relay gateway configuration from defaults,
// an optional JSON file and command-line flags, in that order.
package config

import "time"

// Config holds runtime settings for the relay gateway.
//
// Fields:
//   - EndpointAddr: address the HTTP server listens on.
//   - TextbeltURL: upstream SMS provider endpoint.
//   - HTTPTimeout: per-request timeout for upstream calls.
type Config struct {
	EndpointAddr string
	TextbeltURL  string
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.TextbeltURL = "https://textbelt.com/text"
	c.HTTPTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
