// Package diag builds the diagnostic logger shared by the storage layer,
// the log store and the TUI. User-facing CLI messages do not go through it.
package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level.
// Unknown levels fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "sip",
		Level:  lvl,
	})
}

// Stderr returns a logger writing to standard error.
func Stderr(level string) *log.Logger {
	return New(os.Stderr, level)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
