package config

import (
	"slices"
	"strconv"
	"time"

	"github.com/ayoisaiah/hourglass/internal/logger"
	"github.com/ayoisaiah/hourglass/store"
	"github.com/ayoisaiah/hourglass/timer"
)

var presetNames = []string{"1", "2"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}

	if err := c.validatePresets(); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	return c.validateCLI()
}

func (c *Config) validateDisplay() error {
	if !slices.Contains(timer.Formats, c.Display.Format) {
		return errInvalidFormat.Fmt(c.Display.Format, timer.Formats)
	}

	return nil
}

func (c *Config) validatePresets() error {
	for _, name := range presetNames {
		p, ok := c.Timers[name]
		if !ok {
			return errMissingPreset.Fmt(name)
		}

		if p.Duration < 0 || p.Restart < 0 {
			return errInvalidPreset.Fmt(name)
		}
	}

	return nil
}

func (c *Config) validateSettings() error {
	if !slices.Contains(store.Backends, c.Store.Backend) {
		return errInvalidBackend.Fmt(c.Store.Backend, store.Backends)
	}

	if !slices.Contains(timer.Sounds, c.Notifications.Sound) {
		return errInvalidSound.Fmt(c.Notifications.Sound, timer.Sounds)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateCLI() error {
	if c.CLI.Timer != 0 &&
		!slices.Contains(presetNames, strconv.Itoa(c.CLI.Timer)) {
		return ErrInvalidTimer
	}

	if c.CLI.Output != "" && !slices.Contains(Outputs, c.CLI.Output) {
		return errInvalidOutput.Fmt(c.CLI.Output, Outputs)
	}

	if !c.CLI.Since.IsZero() && !c.CLI.Until.IsZero() &&
		c.CLI.Since.After(c.CLI.Until) {
		return errSinceAfterUntil.Fmt(
			c.CLI.Since.Format(time.DateOnly),
			c.CLI.Until.Format(time.DateOnly),
		)
	}

	return nil
}
