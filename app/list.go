package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/hourglass/internal/config"
	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/timeutil"
	"github.com/ayoisaiah/hourglass/internal/ui"
)

// printHistory writes h to w as a table, JSON or YAML.
func printHistory(w io.Writer, h models.History, output string) error {
	if h == nil {
		h = models.History{}
	}

	switch output {
	case config.OutputJSON:
		b, err := json.MarshalIndent(h, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	case config.OutputYAML:
		b, err := yaml.Marshal(h)
		if err != nil {
			return err
		}

		_, err = w.Write(b)

		return err
	}

	printSessionsTable(w, h)

	return nil
}

// sessionDuration renders d in words, e.g. "1 hour 5 minutes".
func sessionDuration(d models.Duration) string {
	if d.IsZero() {
		return "0 seconds"
	}

	return durafmt.Parse(d.Std()).String()
}

// savedAgo renders the age of a timestamp, e.g. "3 days ago". Timestamps
// that cannot be parsed are shown as saved.
func savedAgo(timestamp string) string {
	t, err := timeutil.ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}

	return humanize.Time(t)
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, h models.History) {
	tableBody := make([][]string, len(h))

	for i := range h {
		sess := h[i]

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			savedAgo(sess.Timestamp),
			sess.TaskName,
			ui.Green(sessionDuration(sess.Duration)),
		}
	}

	tableBody = append([][]string{
		{"#", "SAVED", "TASK", "DURATION"},
	}, tableBody...)

	fmt.Fprintln(w, ui.Blue("Previous Timer Data:"))

	ui.PrintTable(tableBody, w)
}
