// Package models defines the timer duration and the session records that
// hourglass persists
package models

import (
	"encoding/json"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
	secondsInADay    = 86400
	hoursInADay      = 24
)

// TimestampLayout is the format used for the timestamp of new sessions.
const TimestampLayout = time.RFC3339

// Duration is a structured span of time. Values decoded from user input or
// older data files may be unnormalised (e.g. 90 minutes).
type Duration struct {
	Hours   int `json:"hours"   yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
	Days    int `json:"days"    yaml:"days"`
	Seconds int `json:"seconds" yaml:"seconds"`
}

// UnmarshalJSON accepts fractional fields, which older data files contain
// when a fractional duration flag was saved as is. The fraction of each field
// is carried down into Seconds, and Seconds is floored.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw struct {
		Hours   float64 `json:"hours"`
		Minutes float64 `json:"minutes"`
		Days    float64 `json:"days"`
		Seconds float64 `json:"seconds"`
	}

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	days, daysFrac := math.Modf(raw.Days)
	hours, hoursFrac := math.Modf(raw.Hours)
	minutes, minutesFrac := math.Modf(raw.Minutes)

	secs := raw.Seconds +
		daysFrac*secondsInADay +
		hoursFrac*secondsInAnHour +
		minutesFrac*secondsInAMinute

	// 1e-6 absorbs float error such as 0.7*60 = 41.99999999999999
	*d = Duration{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(math.Floor(secs + 1e-6)),
	}

	return nil
}

// Session is a record of one completed or interrupted timer run.
type Session struct {
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	TaskName  string   `json:"taskName"  yaml:"taskName"`
	Duration  Duration `json:"duration"  yaml:"duration"`
}

// History is the ordered list of saved sessions. Insertion order is save
// order.
type History []Session

// TotalSeconds flattens d into whole seconds. The result is never negative:
// the flattened sum is clamped at zero, not the individual fields.
func (d Duration) TotalSeconds() int {
	total := d.Days*secondsInADay +
		d.Hours*secondsInAnHour +
		d.Minutes*secondsInAMinute +
		d.Seconds

	return max(total, 0)
}

// IsZero reports whether d flattens to zero seconds.
func (d Duration) IsZero() bool {
	return d.TotalSeconds() == 0
}

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.TotalSeconds()) * time.Second
}

// FromSeconds decomposes secs into a normalised Duration. Negative input is
// treated as zero.
func FromSeconds(secs int) Duration {
	secs = max(secs, 0)

	hours := secs / secondsInAnHour

	return Duration{
		Days:    hours / hoursInADay,
		Hours:   hours % hoursInADay,
		Minutes: (secs % secondsInAnHour) / secondsInAMinute,
		Seconds: secs % secondsInAMinute,
	}
}

// FromStd converts a time.Duration to a normalised Duration, discarding
// anything below one second.
func FromStd(d time.Duration) Duration {
	return FromSeconds(int(d / time.Second))
}

// NewSession creates a session record stamped with the provided time.
func NewSession(at time.Time, taskName string, d Duration) Session {
	return Session{
		Timestamp: at.Format(TimestampLayout),
		TaskName:  taskName,
		Duration:  d,
	}
}
