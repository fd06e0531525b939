// Package errors formats failures at the CLI boundary so every command
// exits the same way.
package errors

import (
	"fmt"
	"os"

	"github.com/mosaic-habits/mosaic/internal/logger"
)

// Format prefixes an error for terminal display.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr and exits 1. Nil is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
