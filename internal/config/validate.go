package config

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/bookmark/internal/logger"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Library.Dir) == "" {
		return errEmptyLibraryDir
	}

	if !slices.Contains(SortOptions, c.Library.Sort) {
		return errInvalidSort.Fmt(c.Library.Sort, SortOptions)
	}

	if _, ok := logger.ParseLevel(c.Settings.LogLevel); !ok {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	if !c.CLI.StartTime.IsZero() && !c.CLI.EndTime.IsZero() &&
		!c.CLI.EndTime.After(c.CLI.StartTime) {
		return errInvalidRange.Fmt(c.CLI.EndTime, c.CLI.StartTime)
	}

	return nil
}
