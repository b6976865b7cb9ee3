package store

import "github.com/ayoisaiah/hourglass/internal/apperr"

var (
	// ErrMalformedData indicates stored data that could not be decoded. The
	// accompanying history is empty.
	ErrMalformedData = &apperr.Error{
		Message: "timer data file is empty or not in the correct format",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %q",
	}

	errHourglassRunning = &apperr.Error{
		Message: "is hourglass already running? The session database is locked by another process",
	}

	errFlush = &apperr.Error{
		Message: "unable to save timer data",
	}
)
