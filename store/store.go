// Package store persists the session history and answers aggregate queries
// over it. The history is always written in full: Flush replaces whatever the
// backend held before with the history it is given.
package store

import (
	"slices"

	"github.com/ayoisaiah/hourglass/internal/models"
)

// Supported storage backends.
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Backends lists every value accepted for the store.backend setting.
var Backends = []string{BackendJSON, BackendBolt, BackendSQLite}

// Store is the durable home of the session history.
type Store interface {
	// Load reads the full history. Missing storage yields an empty history
	// and no error. Unreadable contents yield an empty history and an error
	// matching ErrMalformedData, which callers should report as a warning.
	Load() (models.History, error)
	// Flush overwrites the stored history with h.
	Flush(h models.History) error
	// Close releases any handle held on the underlying storage.
	Close() error
}

// Options selects and locates a storage backend.
type Options struct {
	Backend string
	Path    string
}

// Open returns the Store for the configured backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendJSON, "":
		return NewJSONFile(opts.Path), nil
	case BackendBolt:
		return NewBolt(opts.Path)
	case BackendSQLite:
		return NewSQLite(opts.Path)
	}

	return nil, errUnknownBackend.Fmt(opts.Backend)
}

// Append returns a new history with sess at the end. h is left untouched.
func Append(h models.History, sess models.Session) models.History {
	out := slices.Clone(h)

	return append(out, sess)
}
