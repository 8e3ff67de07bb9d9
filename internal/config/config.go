// Package config resolves Drashta's runtime configuration: CLI flags
// overridden by environment variables, following the teacher's
// env-overrides-flags-overrides-defaults priority. There is no on-disk
// config file — the server is stateless across restarts (spec §6), so
// there is nothing for a config file to persist.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Environment variable names for config overrides.
const (
	EnvPort         = "DRASHTA_PORT"
	EnvDrainMaxLim  = "DRASHTA_DRAIN_MAX_LIMIT"
	EnvAssetsDir    = "DRASHTA_ASSETS_DIR"
	EnvQueryTimeout = "DRASHTA_QUERY_TIMEOUT"
)

// Config holds Drashta's runtime configuration.
type Config struct {
	// Port is the TCP port the HTTP server binds to on 0.0.0.0.
	Port int
	// DrainMaxLimit caps the `limit` query parameter accepted by
	// /drain, /older, and /previous.
	DrainMaxLimit int
	// AssetsDir is the directory the /app/* static mount serves from. Empty
	// disables static serving.
	AssetsDir string
	// QueryTimeout bounds a single historical query's wall-clock time.
	QueryTimeout time.Duration
}

// Default returns Drashta's default configuration.
func Default() Config {
	return Config{
		Port:          3200,
		DrainMaxLimit: 5000,
		AssetsDir:     "",
		QueryTimeout:  30 * time.Second,
	}
}

// Load parses flags from args (typically os.Args[1:]) over the defaults,
// then applies environment overrides, which take the highest priority.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("drashtad", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "TCP port to listen on")
	fs.IntVar(&cfg.DrainMaxLimit, "drain-max-limit", cfg.DrainMaxLimit, "hard cap on the limit query parameter")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "directory to serve the web UI bundle from")
	fs.DurationVar(&cfg.QueryTimeout, "query-timeout", cfg.QueryTimeout, "wall-clock ceiling for a historical query")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return applyEnvOverrides(cfg), nil
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		}
	}
	if v := os.Getenv(EnvDrainMaxLim); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DrainMaxLimit = n
		}
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	if v := os.Getenv(EnvQueryTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.QueryTimeout = d
		}
	}
	return cfg
}
