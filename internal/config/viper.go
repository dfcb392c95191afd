package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyLibraryDir           = "library.dir"
	keyLibrarySort          = "library.sort"
	keyLibrarySample        = "library.sample"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "settings.log_level"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// file is created with default values if it does not exist.
func WithViperConfig(configPath, defaultLibraryDir string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c, defaultLibraryDir)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config, defaultLibraryDir string) {
	v.SetDefault(keyLibraryDir, defaultLibraryDir)
	v.SetDefault(keyLibrarySort, SortRecent)
	v.SetDefault(keyLibrarySample, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")

	// values from the first-run prompt
	if c.Library.Dir != "" {
		v.Set(keyLibraryDir, c.Library.Dir)
	}

	if c.Library.Sort != "" {
		v.Set(keyLibrarySort, c.Library.Sort)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}
