package config

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes used by command entrypoints.
const (
	ExitFailure = 1
	// ExitUsage reports a bad flag, env value or game configuration.
	ExitUsage = 2
)

var exitFunc = os.Exit

var stderr io.Writer = os.Stderr

// ExitWithCode writes a formatted error message to stderr and exits with code.
func ExitWithCode(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(code)
}
