// Package config loads the ambient configuration for this repo's own HTTP
// surface and ingestion defaults — never the numerical solver's own YAML
// template, which remains the out-of-scope external collaborator's
// concern (§6). Grounded in the teacher pack's
// aipilotbyjd-linkflow-v2/internal/pkg/config, which resolves a typed
// struct from environment variables and an optional file via spf13/viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved runtime configuration for cmd/reachd.
type Config struct {
	Server ServerConfig
	Ingest IngestConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// IngestConfig holds the terminal code and null sentinel the HTTP handler
// passes to ExtractConnections/ExtractWaterbodies on every request, and
// where the demo segment table lives on disk.
type IngestConfig struct {
	TerminalCode        int64
	NullSentinel        int64
	DefaultSegmentTable string
}

// LogConfig controls obslog.Init.
type LogConfig struct {
	Environment string
	Level       string
}

// Load resolves Config from environment variables prefixed REACHD_ (for
// example REACHD_SERVER_PORT) and, if present, a "reachd" YAML config file
// in the working directory or /etc/reachd. Unset values fall back to the
// defaults below.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("reachd")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("reachd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/reachd")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("ingest.terminal_code", 0)
	v.SetDefault("ingest.null_sentinel", -9999)
	v.SetDefault("ingest.default_segment_table", "testdata/segments.csv")
	v.SetDefault("log.environment", "development")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Ingest: IngestConfig{
			TerminalCode:        v.GetInt64("ingest.terminal_code"),
			NullSentinel:        v.GetInt64("ingest.null_sentinel"),
			DefaultSegmentTable: v.GetString("ingest.default_segment_table"),
		},
		Log: LogConfig{
			Environment: v.GetString("log.environment"),
			Level:       v.GetString("log.level"),
		},
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server should bind to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
