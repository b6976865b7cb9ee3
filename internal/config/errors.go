package config

import "github.com/ayoisaiah/hourglass/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	// ErrInvalidTimer is returned for a --timer value with no preset.
	ErrInvalidTimer = &apperr.Error{
		Message: "Invalid timer number. Choose 1 or 2.",
	}

	errInvalidFormat = &apperr.Error{
		Message: "invalid format %q: must be one of %v",
	}

	errInvalidBackend = &apperr.Error{
		Message: "invalid store backend %q: must be one of %v",
	}

	errInvalidSound = &apperr.Error{
		Message: "invalid notification sound %q: must be one of %v",
	}

	errInvalidOutput = &apperr.Error{
		Message: "invalid output %q: must be one of %v",
	}

	errMissingPreset = &apperr.Error{
		Message: "predefined timer %s is missing from the config file",
	}

	errInvalidPreset = &apperr.Error{
		Message: "predefined timer %s: durations must not be negative",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level %q",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse %s date %q",
	}

	errSinceAfterUntil = &apperr.Error{
		Message: "--since (%s) must not be later than --until (%s)",
	}
)
