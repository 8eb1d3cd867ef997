package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/flagx"
	"github.com/dmitrijs2005/luvletter/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	RelayEndpoint string         `json:"relay_endpoint"`
	DatabaseDSN   string         `json:"database_dsn"`
	HTTPTimeout   timex.Duration `json:"http_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. If no file is named, nothing is loaded.
// Panics on read or unmarshal errors. Fields absent from the JSON keep
// their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RelayEndpoint != "" {
		cfg.RelayEndpoint = jc.RelayEndpoint
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
}
