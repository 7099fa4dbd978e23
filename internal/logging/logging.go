// Package logging provides the leveled stderr logger used across td.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = New(os.Stderr, DebugEnabled())

// DebugEnabled returns true if debug mode is enabled via TD_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TD_DEBUG") != ""
}

// New creates a logger writing to w. Verbose loggers emit debug records.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "td",
		ReportTimestamp: false,
	})
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetVerbose switches the package logger between info and debug level.
// TD_DEBUG keeps debug output on regardless of v.
func SetVerbose(v bool) {
	if v || DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.InfoLevel)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Debug logs a debug message with structured key/value pairs
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
