package config

import "time"

// Config holds runtime settings for the luvletter CLI.
//
// Fields:
//   - RelayEndpoint: base URL of the SMS relay gateway.
//   - DatabaseDSN: path of the local SQLite database file.
//   - HTTPTimeout: per-request timeout for relay and provider calls.
type Config struct {
	RelayEndpoint string
	DatabaseDSN   string
	HTTPTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RelayEndpoint = "http://127.0.0.1:8080"
	c.DatabaseDSN = "luvletter.db"
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
