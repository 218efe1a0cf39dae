package cli

import (
	"os"

	"github.com/innovatech/employee-portal/internal/logging"
)

// newLogger builds the client logger. Diagnostics go to stderr so the REPL
// output on stdout stays readable.
func newLogger() logging.Logger {
	return logging.NewJSON(os.Stderr)
}
