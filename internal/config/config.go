// Package config loads BookMark settings from the config file, command-line
// flags and the first-run prompt
package config

import (
	"fmt"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Library       LibraryConfig      `mapstructure:"library"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// LibraryConfig holds library-related settings
	LibraryConfig struct {
		Dir    string `mapstructure:"dir"`
		Sort   string `mapstructure:"sort"`
		Sample bool   `mapstructure:"sample"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd      string `mapstructure:"cmd"`
		LogLevel string `mapstructure:"log_level"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds values that only come from command-line flags
	CLIConfig struct {
		StartTime time.Time
		EndTime   time.Time
		Books     []string
		JSON      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// Library sort orders.
const (
	SortRecent = "recent"
	SortTitle  = "title"
	SortAuthor = "author"
)

var SortOptions = []string{SortRecent, SortTitle, SortAuthor}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// ClockLayout is the time format used in interactive output.
func (c *Config) ClockLayout() string {
	if c.Display.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// String renders the config for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf(
		"library=%s sort=%s sample=%t notifications=%t cmd=%q",
		c.Library.Dir,
		c.Library.Sort,
		c.Library.Sample,
		c.Notifications.Enabled,
		c.Settings.Cmd,
	)
}
