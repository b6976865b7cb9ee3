// Package stats renders the analysis of saved hourglass sessions
package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/timeutil"
	"github.com/ayoisaiah/hourglass/internal/ui"
	"github.com/ayoisaiah/hourglass/store"
)

// NoTask labels sessions saved without a task name.
const NoTask = "(no task)"

// TaskTotal is the time logged against one task.
type TaskTotal struct {
	Name     string `json:"name"     yaml:"name"`
	Sessions int    `json:"sessions" yaml:"sessions"`
	Seconds  int    `json:"seconds"  yaml:"seconds"`
}

// ByTask groups the non-empty sessions of h by task name. Named tasks are
// listed in natural order, followed by sessions that have no task.
func ByTask(h models.History) []TaskTotal {
	totals := make(map[string]*TaskTotal)

	for i := range h {
		secs := h[i].Duration.TotalSeconds()
		if secs <= 0 {
			continue
		}

		name := strings.TrimSpace(h[i].TaskName)
		if name == "" {
			name = NoTask
		}

		t, ok := totals[name]
		if !ok {
			t = &TaskTotal{Name: name}
			totals[name] = t
		}

		t.Sessions++
		t.Seconds += secs
	}

	out := make([]TaskTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == NoTask || out[j].Name == NoTask {
			return out[j].Name == NoTask && out[i].Name != NoTask
		}

		return natural.Less(out[i].Name, out[j].Name)
	})

	return out
}

// formatSeconds prints a number of seconds the way JavaScript would: without
// a fractional part when there is none.
func formatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'f', -1, 64)
}

func humanDuration(secs int) string {
	if secs == 0 {
		return "0 seconds"
	}

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(time.Duration(secs) * time.Second).LimitFirstN(2).String()
}

// Summary renders the aggregate analysis.
func Summary(a store.Analysis) string {
	var s strings.Builder

	s.WriteString(ui.Blue("Timer Data Analysis:") + "\n")
	s.WriteString(fmt.Sprintf("Total Timers: %s\n", ui.Green(a.TotalSessions)))
	s.WriteString(fmt.Sprintf("Total Time: %s seconds\n", ui.Green(a.TotalSeconds)))
	s.WriteString(fmt.Sprintf(
		"Average Time: %s seconds\n",
		ui.Green(formatSeconds(a.AverageSeconds)),
	))

	if a.TotalSessions > 0 {
		s.WriteString(fmt.Sprintf(
			"Time logged: %s (average %s)\n",
			ui.Green(humanDuration(a.TotalSeconds)),
			ui.Green(humanDuration(timeutil.Round(a.AverageSeconds))),
		))
	}

	return s.String()
}

// Tasks renders the per-task breakdown. It is empty when there is nothing to
// break down.
func Tasks(tasks []TaskTotal) string {
	if len(tasks) == 0 {
		return ""
	}

	var s strings.Builder

	s.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Tasks")))

	for _, t := range tasks {
		s.WriteString(fmt.Sprintf(
			"%s: %s in %d %s\n",
			t.Name,
			ui.Green(humanDuration(t.Seconds)),
			t.Sessions,
			plural(t.Sessions, "session", "sessions"),
		))
	}

	return s.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
