package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first if present; it never overrides variables
// that are already set.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString(&config.Addr, "PORTAL_ADDR")
	setString(&config.EmployeeBackend, "PORTAL_EMPLOYEE_BACKEND")
	setString(&config.CredentialsBackend, "PORTAL_CREDENTIALS_BACKEND")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.AWSRegion, "AWS_REGION")
	setString(&config.AWSBaseEndpoint, "AWS_ENDPOINT_URL")
	setString(&config.AWSAccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&config.AWSSecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&config.EmployeesTable, "PORTAL_EMPLOYEES_TABLE")
	setString(&config.EventBusName, "PORTAL_EVENT_BUS")
	setString(&config.BootstrapEmail, "PORTAL_BOOTSTRAP_EMAIL")
	setString(&config.BootstrapPassword, "PORTAL_BOOTSTRAP_PASSWORD")
	setString(&config.BootstrapName, "PORTAL_BOOTSTRAP_NAME")

	if v, ok := os.LookupEnv("PORTAL_ALLOWED_EMAILS"); ok {
		config.AllowedEmails = splitEmails(v)
	}
}

// splitEmails parses a comma-separated list, dropping empty entries.
func splitEmails(v string) []string {
	emails := []string{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			emails = append(emails, strings.ToLower(part))
		}
	}
	return emails
}
