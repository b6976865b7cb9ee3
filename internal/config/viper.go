package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/hourglass/internal/osutil"
	"github.com/ayoisaiah/hourglass/store"
	"github.com/ayoisaiah/hourglass/timer"
)

const (
	keyFormat               = "display.format"
	keyNoColor              = "display.no_color"
	keyStoreBackend         = "store.backend"
	keyStorePath            = "store.path"
	keyTimer1Duration       = "timers.1.duration"
	keyTimer1Restart        = "timers.1.restart"
	keyTimer2Duration       = "timers.2.duration"
	keyTimer2Restart        = "timers.2.restart"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySessionCmd           = "settings.session_cmd"
	keyAskToRepeat          = "settings.ask_to_repeat"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing one with the defaults if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyFormat, timer.FormatDefault)
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyStoreBackend, store.BackendJSON)
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyTimer1Duration, "25m")
	v.SetDefault(keyTimer1Restart, "5m")
	v.SetDefault(keyTimer2Duration, "45m")
	v.SetDefault(keyTimer2Restart, "15m")
	v.SetDefault(keyNotificationsEnabled, false)
	v.SetDefault(keyNotificationsSound, timer.SoundBell)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyAskToRepeat, false)
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig decodes the merged Viper values into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
