package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/innovatech/employee-portal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds to keep the file format trivial.
type JsonConfig struct {
	ServerBaseURL         string `json:"server_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	SessionFile           string `json:"session_file"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If neither flag is given, nothing is loaded.
// Read or unmarshal errors panic; config is resolved once at startup.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
}
