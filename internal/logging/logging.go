// Package logging builds the structured loggers used by every binary.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func New(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to path, or a discarding logger when
// path is empty. The terminal frontend cannot log to stderr without tearing
// the screen.
func OpenFile(path, prefix, level string) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard(), func() error { return nil }, err
	}
	return New(f, prefix, level), f.Close, nil
}
