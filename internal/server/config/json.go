package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/innovatech/employee-portal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in whole seconds to keep the file format trivial.
type JsonConfig struct {
	Addr               string   `json:"addr"`
	EmployeeBackend    string   `json:"employee_backend"`
	CredentialsBackend string   `json:"credentials_backend"`
	DatabaseDSN        string   `json:"database_dsn"`
	AWSRegion          string   `json:"aws_region"`
	AWSBaseEndpoint    string   `json:"aws_base_endpoint"`
	EmployeesTable     string   `json:"employees_table"`
	EventBusName       string   `json:"event_bus_name"`
	AllowedEmails      []string `json:"allowed_emails"`
	RateLimitPerSecond float64  `json:"rate_limit_per_second"`
	RateLimitBurst     int      `json:"rate_limit_burst"`
	DeletingTTLSeconds int      `json:"deleting_ttl_seconds"`
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

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.EmployeeBackend != "" {
		cfg.EmployeeBackend = jc.EmployeeBackend
	}
	if jc.CredentialsBackend != "" {
		cfg.CredentialsBackend = jc.CredentialsBackend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AWSRegion != "" {
		cfg.AWSRegion = jc.AWSRegion
	}
	if jc.AWSBaseEndpoint != "" {
		cfg.AWSBaseEndpoint = jc.AWSBaseEndpoint
	}
	if jc.EmployeesTable != "" {
		cfg.EmployeesTable = jc.EmployeesTable
	}
	if jc.EventBusName != "" {
		cfg.EventBusName = jc.EventBusName
	}
	if len(jc.AllowedEmails) > 0 {
		cfg.AllowedEmails = jc.AllowedEmails
	}
	if jc.RateLimitPerSecond > 0 {
		cfg.RateLimitPerSecond = jc.RateLimitPerSecond
	}
	if jc.RateLimitBurst > 0 {
		cfg.RateLimitBurst = jc.RateLimitBurst
	}
	if jc.DeletingTTLSeconds > 0 {
		cfg.DeletingTTL = time.Duration(jc.DeletingTTLSeconds) * time.Second
	}
}
