package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/collabops/webexctl/internal/config"
	"github.com/collabops/webexctl/internal/logging"
	"github.com/collabops/webexctl/internal/webex"
)

// rootCmd represents the base command for the webexctl application
var rootCmd = &cobra.Command{
	Use:   "webexctl",
	Short: "Generate Webex usage reports and schedule meetings",
	Long: `webexctl talks to the Webex REST API using an OAuth refresh token.

It can:
  - Generate and download a meeting-usage report (report)
  - Create a scheduled meeting (schedule)

All settings come from environment variables, optionally seeded from a
dotenv file passed with --env-file.`,
	SilenceUsage: true,
}

// envFile is the optional dotenv file loaded before reading the environment
var envFile string

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "webexctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// newLogger builds the process logger from the loaded configuration.
// It logs to stderr so that stdout stays clean for command output.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// newWebexClient performs the refresh-token exchange and wraps the resulting
// access token in an API client. Both commands go through here.
func newWebexClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*webex.Client, error) {
	logger.Info("authenticating with Webex")

	tok, err := webex.Authenticate(ctx, webex.Credentials{
		ClientID:     cfg.Webex.ClientID,
		ClientSecret: cfg.Webex.ClientSecret,
		RefreshToken: cfg.Webex.RefreshToken,
	}, cfg.Webex.APIBase, &http.Client{Timeout: cfg.Webex.HTTPTimeout})
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	logger.Info("authentication successful",
		slog.String("token", logging.SanitizeToken(tok.AccessToken)))

	return webex.NewClient(tok.AccessToken, &webex.Config{
		BaseURL: cfg.Webex.APIBase,
		Timeout: cfg.Webex.HTTPTimeout,
		Logger:  logger,
	})
}
