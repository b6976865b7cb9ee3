package store

import (
	"time"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/timeutil"
)

// Analysis summarises a history. Sessions that flatten to zero seconds are
// not counted.
type Analysis struct {
	TotalSessions  int     `json:"total_sessions"`
	TotalSeconds   int     `json:"total_seconds"`
	AverageSeconds float64 `json:"average_seconds"`
}

// Analyze computes the session count, total and average duration of h.
func Analyze(h models.History) Analysis {
	var a Analysis

	for i := range h {
		secs := h[i].Duration.TotalSeconds()
		if secs <= 0 {
			continue
		}

		a.TotalSessions++
		a.TotalSeconds += secs
	}

	if a.TotalSessions > 0 {
		a.AverageSeconds = float64(a.TotalSeconds) / float64(a.TotalSessions)
	}

	return a
}

// Filter returns the sessions saved within [since, until]. A zero bound is
// open. Sessions whose timestamp cannot be parsed are dropped whenever a
// bound is set.
func Filter(h models.History, since, until time.Time) models.History {
	if since.IsZero() && until.IsZero() {
		return h
	}

	out := models.History{}

	for _, sess := range h {
		ts, err := timeutil.ParseTimestamp(sess.Timestamp)
		if err != nil {
			continue
		}

		if !since.IsZero() && ts.Before(since) {
			continue
		}

		if !until.IsZero() && ts.After(until) {
			continue
		}

		out = append(out, sess)
	}

	return out
}
