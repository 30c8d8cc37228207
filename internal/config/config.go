package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/sip/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// BackendJSONL stores one JSON object per line in a single file
	BackendJSONL = "jsonl"
	// BackendSlot stores the whole log as one JSON array under a single key
	BackendSlot = "slot"
)

// Config represents the application configuration
type Config struct {
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Timezone defines the timezone for time operations (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// Backend selects the storage layout for the drink log (jsonl or slot)
	Backend string `toml:"backend"`
	// DataDir overrides where the drink log is stored; ~ is expanded
	DataDir string `toml:"data_dir"`
	// CatalogPath points at a JSON drink catalog; empty uses the built-in catalog
	CatalogPath string `toml:"catalog_path"`
	// UndoWindow is how long after logging a drink it can still be undone ("0" means no limit)
	UndoWindow string `toml:"undo_window"`
	// DailyLimit is the number of units per day above which a warning is shown (0 disables)
	DailyLimit float64 `toml:"daily_limit"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme"`
	// LogLevel sets the diagnostic log level (debug, info, warn, error)
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
		Timezone:     "Local",
		Backend:      BackendJSONL,
		UndoWindow:   "5m",
		LogLevel:     "warn",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, osutil.AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns DefaultConfig.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	return Load(path)
}

// Normalize lower-cases enumerated values and fills blanks with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	if c.WeekStartDay == "" {
		c.WeekStartDay = defaults.WeekStartDay
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	c.UndoWindow = strings.TrimSpace(c.UndoWindow)
	if c.UndoWindow == "" {
		c.UndoWindow = defaults.UndoWindow
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate checks that every setting holds an accepted value.
func (c Config) Validate() error {
	switch c.WeekStartDay {
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start_day %q: must be \"monday\" or \"sunday\"", c.WeekStartDay)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	switch c.Backend {
	case BackendJSONL, BackendSlot:
	default:
		return fmt.Errorf("invalid backend %q: must be %q or %q", c.Backend, BackendJSONL, BackendSlot)
	}

	window, err := c.UndoWindowDuration()
	if err != nil {
		return fmt.Errorf("invalid undo_window %q: %w", c.UndoWindow, err)
	}
	if window < 0 {
		return fmt.Errorf("invalid undo_window %q: must not be negative", c.UndoWindow)
	}

	if c.DailyLimit < 0 {
		return fmt.Errorf("invalid daily_limit %v: must not be negative", c.DailyLimit)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}

	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// WeekStart returns the configured first day of the week.
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartDay == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// UndoWindowDuration parses the undo window. "0" means undo has no time limit.
func (c Config) UndoWindowDuration() (time.Duration, error) {
	if c.UndoWindow == "" || c.UndoWindow == "0" {
		return 0, nil
	}
	return time.ParseDuration(c.UndoWindow)
}

// GenerateSampleConfig returns a commented config file documenting every setting.
func GenerateSampleConfig() string {
	return `# sip configuration file
# Uncomment and edit the settings you want to change.

# Week start day: "monday" or "sunday"
# week_start_day = "monday"

# Timezone: IANA timezone name or "Local"
# Examples: "Local", "America/New_York", "Europe/London", "Asia/Tokyo"
# timezone = "Local"

# Storage backend: "jsonl" (one entry per line) or "slot" (single JSON array)
# backend = "jsonl"

# Directory holding the drink log; ~ is expanded
# data_dir = "~/.local/share/sip"

# JSON drink catalog: [{"drink_name": "...", "drink_category": "...", "units": 1.0}]
# catalog_path = "~/drinks.json"

# How long a logged drink can be undone ("0" = until the next drink is logged)
# undo_window = "5m"

# Warn when a day's units exceed this amount (0 disables)
# daily_limit = 0

# TUI theme (any bubbletint theme ID)
# theme = "dracula"

# Diagnostic log level: debug, info, warn, error
# log_level = "warn"
`
}
