package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation  = "operation"
	KeyService    = "service"
	KeyStatus     = "status"
	KeyError      = "error"
	KeyDuration   = "duration"
	KeyAttempt    = "attempt"
	KeyReportID   = "report_id"
	KeyTemplateID = "template_id"
)

// Status values for consistent logging.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Config controls how the process-wide logger is built.
type Config struct {
	// Level is the minimum level to emit: "debug", "info", "warn" or "error".
	Level string

	// Format selects the handler: "text" or "json".
	Format string

	// Output is the destination writer. Defaults to os.Stderr so that
	// stdout stays reserved for user-facing command output.
	Output io.Writer
}

// New builds a structured logger from the given configuration.
func New(cfg Config) (*slog.Logger, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(cfg.Output, opts)
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want \"text\" or \"json\")", cfg.Format)
	}

	return slog.New(handler), nil
}

// ParseLevel converts a level name into a slog.Level. An empty name
// defaults to info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithService returns a logger with the service attribute set.
func WithService(logger *slog.Logger, service string) *slog.Logger {
	return logger.With(slog.String(KeyService, service))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Service returns a slog attribute for the service name.
func Service(svc string) slog.Attr {
	return slog.String(KeyService, svc)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Attempt returns a slog attribute for a poll attempt counter.
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// Duration returns a slog attribute for an elapsed duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// ReportID returns a slog attribute for a report job id.
func ReportID(id string) slog.Attr {
	return slog.String(KeyReportID, id)
}

// TemplateID returns a slog attribute for a report template id.
func TemplateID(id int) slog.Attr {
	return slog.Int(KeyTemplateID, id)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output. This allows safely passing Err(maybeNilErr) without adding empty
// attributes.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
