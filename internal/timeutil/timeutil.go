// Package timeutil provides utility functions for parsing and bounding the
// timestamps of saved sessions.
package timeutil

import (
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FloorSeconds returns the whole seconds elapsed between from and to. A
// negative span is reported as zero.
func FloorSeconds(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}

	return int(d / time.Second)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses a human readable date such as "yesterday", "2 days ago" or
// "2024-03-09 14:00".
func FromStr(s string) (time.Time, error) {
	dt, err := dateparser.Parse(nil, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// localeLayout is the en-US locale format found in older data files, such as
// "3/9/2024, 2:00:00 PM". It carries no zone and is read as local time.
const localeLayout = "1/2/2006, 3:04:05 PM"

// ParseTimestamp reads the timestamp of a saved session. Timestamps written by
// hourglass are RFC 3339. Locale formatted strings from older data files are
// also accepted, and anything else goes through the natural language parser.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(localeLayout, s, time.Local)
	if err == nil {
		return t, nil
	}

	return FromStr(s)
}
