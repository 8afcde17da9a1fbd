// Package cmd implements the command-line interface for webexctl.
//
// This package provides the following commands:
//   - report: Generate a Webex meeting usage report and save it as CSV
//   - schedule: Create a scheduled Webex meeting
//   - version: Display version information
//
// All commands read their configuration from environment variables,
// optionally loaded from a .env file via the --env-file flag.
package cmd
