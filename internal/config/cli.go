package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/bookmark/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Since         string
	Until         string
	Books         string
	Library       string
	Sort          string
	SessionCmd    string
	DisableNotify bool
	JSON          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Since:         ctx.String("since"),
			Until:         ctx.String("until"),
			Books:         ctx.String("book"),
			Library:       ctx.String("library"),
			Sort:          ctx.String("sort"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			JSON:          ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Books != "" {
		c.CLI.Books = splitAndTrim(opts.Books)
	}

	if opts.Library != "" {
		c.Library.Dir = opts.Library
	}

	if opts.Sort != "" {
		c.Library.Sort = opts.Sort
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.JSON = opts.JSON

	c.CLI.EndTime = now

	if opts.Until != "" {
		endTime, err := timeutil.FromStr(opts.Until)
		if err != nil {
			return errInvalidUntil.Wrap(err)
		}

		c.CLI.EndTime = endTime
	}

	if opts.Since != "" {
		startTime, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidSince.Wrap(err)
		}

		c.CLI.StartTime = startTime
	}

	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	split := strings.Split(s, ",")

	trimmed := make([]string, 0, len(split))

	for _, v := range split {
		v = strings.TrimSpace(v)
		if v != "" {
			trimmed = append(trimmed, v)
		}
	}

	return trimmed
}
