// Package config loads runtime configuration for the portal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the portal client.
//
// Fields:
//   - ServerBaseURL: base URL of the portal backend.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - SessionFile: path of the single persisted session value.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SessionFile    string
}

// LoadDefaults populates c with sensible defaults. The session file lives
// under the temp dir so it does not outlive the machine session by much,
// mirroring session-scoped browser storage.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = filepath.Join(os.TempDir(), "employee-portal", "authuser.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
