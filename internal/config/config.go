// Package config merges the configuration file and command-line flags into
// the settings used by a single hourglass run
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ayoisaiah/hourglass/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig           `mapstructure:"display"`
		Store         StoreConfig             `mapstructure:"store"`
		Timers        map[string]PresetConfig `mapstructure:"timers"`
		Notifications NotificationConfig      `mapstructure:"notifications"`
		Settings      SettingsConfig          `mapstructure:"settings"`
		Log           LogConfig               `mapstructure:"log"`
		CLI           CLIConfig               `mapstructure:"-"`
		PathToConfig  string                  `mapstructure:"-"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Format  string `mapstructure:"format"`
		NoColor bool   `mapstructure:"no_color"`
	}

	// StoreConfig selects where sessions are saved. An empty path means the
	// default location for the backend.
	StoreConfig struct {
		Backend string `mapstructure:"backend"`
		Path    string `mapstructure:"path"`
	}

	// PresetConfig is a predefined timer: a work duration followed by a
	// restart duration, repeated until quit.
	PresetConfig struct {
		Duration time.Duration `mapstructure:"duration"`
		Restart  time.Duration `mapstructure:"restart"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Sound   string `mapstructure:"sound"`
	}

	// SettingsConfig holds general behaviour settings.
	SettingsConfig struct {
		SessionCmd  string `mapstructure:"session_cmd"`
		AskToRepeat bool   `mapstructure:"ask_to_repeat"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds the values that only come from command-line flags.
	CLIConfig struct {
		Duration models.Duration
		// Timer is the predefined timer selected with --timer. Zero means
		// none.
		Timer    int
		TaskName string
		Output   string
		Since    time.Time
		Until    time.Time
		Load     bool
		Analyze  bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

// Version is the current release of hourglass.
const Version = "v1.0.0"

// Output formats for --load.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Outputs lists the values accepted by --output.
var Outputs = []string{OutputTable, OutputJSON, OutputYAML}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// Preset returns the predefined timer n.
func (c *Config) Preset(n int) (PresetConfig, bool) {
	p, ok := c.Timers[strconv.Itoa(n)]

	return p, ok
}

// Countdown resolves the duration to run and, for predefined timers, the
// duration to restart with. ok is false when the flags do not ask for a
// timer at all.
func (c *Config) Countdown() (d models.Duration, restart *models.Duration, ok bool) {
	if c.CLI.Timer != 0 {
		p, found := c.Preset(c.CLI.Timer)
		if !found {
			return models.Duration{}, nil, false
		}

		r := models.FromStd(p.Restart)

		return models.FromStd(p.Duration), &r, true
	}

	d = c.CLI.Duration

	if d.Days == 0 && d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 {
		return models.Duration{}, nil, false
	}

	return d, nil, true
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"format=%s backend=%s timers=%v notifications=%t sound=%s",
		c.Display.Format,
		c.Store.Backend,
		c.Timers,
		c.Notifications.Enabled,
		c.Notifications.Sound,
	)
}
