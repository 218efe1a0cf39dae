package config

import (
	"flag"
	"os"

	"github.com/innovatech/employee-portal/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN for the credentials store
//	-e string   employee storage backend ("memory" or "dynamodb")
//	-k string   credentials storage backend ("memory" or "postgres")
//	-g string   AWS region
//	-n string   DynamoDB employees table name
//	-b string   EventBridge bus name
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-e", "-k", "-g", "-n", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.EmployeeBackend, "e", config.EmployeeBackend, "employee storage backend")
	fs.StringVar(&config.CredentialsBackend, "k", config.CredentialsBackend, "credentials storage backend")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.EmployeesTable, "n", config.EmployeesTable, "DynamoDB employees table")
	fs.StringVar(&config.EventBusName, "b", config.EventBusName, "EventBridge bus name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
