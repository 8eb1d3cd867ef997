package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.RelayEndpoint)
	assert.Equal(t, "luvletter.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestJsonConfig_Unmarshal(t *testing.T) {
	var jc JsonConfig
	payload := `{"relay_endpoint": "http://relay:9000", "database_dsn": "/tmp/l.db", "http_timeout": "30s"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &jc))

	assert.Equal(t, "http://relay:9000", jc.RelayEndpoint)
	assert.Equal(t, "/tmp/l.db", jc.DatabaseDSN)
	assert.Equal(t, 30*time.Second, jc.HTTPTimeout.Duration)
}
