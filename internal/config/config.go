// Package config loads webexctl configuration from the environment,
// optionally seeded from a dotenv file, and validates the fields each
// command needs.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the complete configuration surface of the tool. Every value
// comes from the environment; commands validate only the sections they use.
type Config struct {
	Webex   WebexConfig   `env-prefix:"WEBEX_"`
	Report  ReportConfig  `env-prefix:"REPORT_"`
	Meeting MeetingConfig `env-prefix:"MEETING_"`
	Log     LogConfig     `env-prefix:"LOG_"`
}

// WebexConfig holds the OAuth credentials and API endpoint settings shared
// by every command.
type WebexConfig struct {
	ClientID     string        `env:"CLIENT_ID"`
	ClientSecret string        `env:"CLIENT_SECRET"`
	RefreshToken string        `env:"REFRESH_TOKEN"`
	APIBase      string        `env:"API_BASE" env-default:"https://webexapis.com/v1"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
}

// ReportConfig drives the report command: which site to report on, the date
// window, how templates are filtered, and how completion is polled.
type ReportConfig struct {
	SiteList     string        `env:"SITE_LIST"`
	DaysBack     int           `env:"DAYS_BACK" env-default:"30"`
	Services     []string      `env:"SERVICES" env-default:"Webex Meetings"`
	PollInterval time.Duration `env:"POLL_INTERVAL" env-default:"5s"`
	PollAttempts int           `env:"POLL_ATTEMPTS" env-default:"60"`
	OutputFile   string        `env:"OUTPUT_FILE"`
}

// MeetingConfig describes the single meeting the schedule command creates.
// Start and End are passed through to the API verbatim, so they accept any
// timestamp format Webex accepts (e.g. "2026-09-01 10:00:00").
type MeetingConfig struct {
	Title     string `env:"TITLE"`
	Start     string `env:"START"`
	End       string `env:"END"`
	Timezone  string `env:"TIMEZONE"`
	HostEmail string `env:"HOST_EMAIL"`
	SiteURL   string `env:"SITE_URL"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `env:"LEVEL" env-default:"info"`
	Format string `env:"FORMAT" env-default:"text"`
}

// Load reads configuration from the environment. If envFile is non-empty it
// is loaded first and must exist; otherwise a .env file in the working
// directory is loaded when present.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// ValidateAuth checks the credential fields every command needs.
func (c *Config) ValidateAuth() error {
	var missing []string
	if c.Webex.ClientID == "" {
		missing = append(missing, "WEBEX_CLIENT_ID")
	}
	if c.Webex.ClientSecret == "" {
		missing = append(missing, "WEBEX_CLIENT_SECRET")
	}
	if c.Webex.RefreshToken == "" {
		missing = append(missing, "WEBEX_REFRESH_TOKEN")
	}
	return missingError(missing)
}

// ValidateReport checks everything the report command needs.
func (c *Config) ValidateReport() error {
	if err := c.ValidateAuth(); err != nil {
		return err
	}
	if c.Report.SiteList == "" {
		return missingError([]string{"REPORT_SITE_LIST"})
	}
	if c.Report.DaysBack <= 0 {
		return fmt.Errorf("REPORT_DAYS_BACK must be positive, got %d", c.Report.DaysBack)
	}
	if c.Report.PollInterval <= 0 {
		return fmt.Errorf("REPORT_POLL_INTERVAL must be positive, got %s", c.Report.PollInterval)
	}
	if c.Report.PollAttempts <= 0 {
		return fmt.Errorf("REPORT_POLL_ATTEMPTS must be positive, got %d", c.Report.PollAttempts)
	}
	return nil
}

// ValidateSchedule checks everything the schedule command needs.
func (c *Config) ValidateSchedule() error {
	if err := c.ValidateAuth(); err != nil {
		return err
	}
	var missing []string
	if c.Meeting.Title == "" {
		missing = append(missing, "MEETING_TITLE")
	}
	if c.Meeting.Start == "" {
		missing = append(missing, "MEETING_START")
	}
	if c.Meeting.End == "" {
		missing = append(missing, "MEETING_END")
	}
	if c.Meeting.Timezone == "" {
		missing = append(missing, "MEETING_TIMEZONE")
	}
	if c.Meeting.HostEmail == "" {
		missing = append(missing, "MEETING_HOST_EMAIL")
	}
	if c.Meeting.SiteURL == "" {
		missing = append(missing, "MEETING_SITE_URL")
	}
	return missingError(missing)
}

func missingError(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
}
