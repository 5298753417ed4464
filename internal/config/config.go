package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// SpreadsheetID identifies the schedule spreadsheet.
	SpreadsheetID string `yaml:"spreadsheet_id"`

	// CalendarID is the target Google Calendar.
	CalendarID string `yaml:"calendar_id"`

	// CredentialsFile points at the service-account JSON key.
	CredentialsFile string `yaml:"credentials_file"`

	// Subject is an optional user to impersonate via domain-wide delegation.
	Subject string `yaml:"subject"`

	// Timezone is the IANA zone events are created in (e.g. "Europe/Budapest").
	Timezone string `yaml:"timezone"`

	// Poll is the cron-style schedule for the serve loop, e.g. "@every 1m"
	// or "*/5 * * * *".
	Poll string `yaml:"poll"`

	// RowLimit caps how many spreadsheet rows are fetched per period tab.
	RowLimit int `yaml:"row_limit"`

	// PacingSeconds is the minimum delay between consecutive calendar
	// calls, to stay under the service's rate limits.
	PacingSeconds int `yaml:"pacing_seconds"`

	// Database is the SQLite file holding snapshots and the change log.
	Database string `yaml:"database"`

	// MetricsListen is the /healthz + /metrics listen address for serve
	// mode. Empty disables the endpoint.
	MetricsListen string `yaml:"metrics_listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Normalize fills in missing values with defaults so that partially-filled
// configs still behave sensibly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Europe/Budapest"
	}
	if c.Poll == "" {
		c.Poll = "@every 1m"
	}
	if c.RowLimit <= 0 {
		c.RowLimit = 300
	}
	if c.PacingSeconds <= 0 {
		c.PacingSeconds = 2
	}
	if c.Database == "" {
		c.Database = "sheetcal.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Pacing returns the calendar-call pacing as a duration.
func (c *Config) Pacing() time.Duration {
	return time.Duration(c.PacingSeconds) * time.Second
}

// Validate reports the first missing required field.
func (c *Config) Validate() error {
	if c.SpreadsheetID == "" {
		return errors.New("spreadsheet_id is required")
	}
	if c.CalendarID == "" {
		return errors.New("calendar_id is required")
	}
	if c.CredentialsFile == "" {
		return errors.New("credentials_file is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Load reads and validates the configuration from the given YAML path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}
