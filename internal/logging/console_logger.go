package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ConsoleLogger writes leveled diagnostics to a writer, normally stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a ConsoleLogger writing to w.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &ConsoleLogger{
		logger: log.NewWithOptions(w, log.Options{
			Prefix: "vshell",
			Level:  level,
		}),
	}
}

// With returns a logger that attaches key/value pairs to every message.
func (l *ConsoleLogger) With(keyvals ...interface{}) *ConsoleLogger {
	return &ConsoleLogger{logger: l.logger.With(keyvals...)}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug(sprintf(format, args))
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.logger.Info(sprintf(format, args))
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.logger.Error(sprintf(format, args))
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
