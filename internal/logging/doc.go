// Package logging provides structured logging utilities for the webexctl application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog text and JSON handlers
//   - Consistent attribute naming across the codebase
//   - Token sanitization for safe credential logging
//
// # Usage Patterns
//
// Build the process logger from configuration:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "text"})
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(logger, "reports.create")
//	logger.Info("report requested",
//	    logging.TemplateID(156),
//	    logging.Status(logging.StatusSuccess))
//
// # Security Considerations
//
// Log output goes to stderr so stdout stays reserved for command output.
// Tokens are never logged directly; use SanitizeToken when a token must be
// referenced in a log record.
package logging
