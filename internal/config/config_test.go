package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noaa-owp/reach-decomp/internal/config"
)

func TestServerConfig_Addr(t *testing.T) {
	c := config.ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", c.Addr())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(0), cfg.Ingest.TerminalCode)
	assert.Equal(t, int64(-9999), cfg.Ingest.NullSentinel)
	assert.Equal(t, "info", cfg.Log.Level)
}
