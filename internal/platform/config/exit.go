package config

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses used by the command entry points.
const (
	ExitFailure = 1
	// ExitUsage reports a bad invocation: unknown flags or invalid input.
	ExitUsage = 2
)

var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf writes a formatted error message to stderr and exits with
// ExitFailure.
func Exitf(format string, args ...any) {
	exitf(ExitFailure, format, args...)
}

// ExitUsagef writes a formatted error message to stderr and exits with
// ExitUsage.
func ExitUsagef(format string, args ...any) {
	exitf(ExitUsage, format, args...)
}

func exitf(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	osExit(code)
}
