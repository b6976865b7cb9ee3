package config

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Format     string
	TaskName   string
	Output     string
	Since      string
	Until      string
	SessionCmd string
	Days       int
	Hours      int
	Minutes    int
	Seconds    int
	Timer      int
	Load       bool
	Analyze    bool
	Repeat     bool
	NoColor    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that were not set leave the file values alone.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Days:       ctx.Int("days"),
			Hours:      ctx.Int("hours"),
			Minutes:    ctx.Int("minutes"),
			Seconds:    ctx.Int("seconds"),
			Timer:      ctx.Int("timer"),
			TaskName:   ctx.String("taskName"),
			Output:     ctx.String("output"),
			Since:      ctx.String("since"),
			Until:      ctx.String("until"),
			Load:       ctx.Bool("load"),
			Analyze:    ctx.Bool("analyze"),
			Repeat:     ctx.Bool("repeat"),
			NoColor:    ctx.Bool("no-color"),
		}

		if ctx.IsSet("format") {
			opts.Format = ctx.String("format")
		}

		if ctx.IsSet("session-cmd") {
			opts.SessionCmd = ctx.String("session-cmd")
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	c.CLI.Duration = models.Duration{
		Days:    opts.Days,
		Hours:   opts.Hours,
		Minutes: opts.Minutes,
		Seconds: opts.Seconds,
	}

	c.CLI.Timer = opts.Timer
	c.CLI.TaskName = strings.TrimSpace(opts.TaskName)
	c.CLI.Load = opts.Load
	c.CLI.Analyze = opts.Analyze

	c.CLI.Output = opts.Output
	if c.CLI.Output == "" {
		c.CLI.Output = OutputTable
	}

	if opts.Format != "" {
		c.Display.Format = opts.Format
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.Repeat {
		c.Settings.AskToRepeat = true
	}

	if opts.NoColor {
		c.Display.NoColor = true
	}

	return applyCLIDates(c, opts)
}

// applyCLIDates parses the --since and --until filters. --since is rounded
// to the start of its day and --until to the end of its day.
func applyCLIDates(c *Config, opts CLIOptions) error {
	if opts.Since != "" {
		since, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidDate.Fmt("since", opts.Since).Wrap(err)
		}

		c.CLI.Since = timeutil.RoundToStart(since)
	}

	if opts.Until != "" {
		until, err := timeutil.FromStr(opts.Until)
		if err != nil {
			return errInvalidDate.Fmt("until", opts.Until).Wrap(err)
		}

		c.CLI.Until = timeutil.RoundToEnd(until)
	}

	return nil
}
