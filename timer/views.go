package timer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/hourglass/internal/models"
)

// Display formats for the remaining time.
const (
	FormatDefault = "default"
	FormatCustom  = "custom"
)

// Formats lists the values accepted by --format.
var Formats = []string{FormatDefault, FormatCustom}

const clearLine = "\r\033[K"

type styles struct {
	task      lipgloss.Style
	remaining lipgloss.Style
	notice    lipgloss.Style
	err       lipgloss.Style
	timesUp   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		task:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAB00")).Bold(true),
		remaining: lipgloss.NewStyle().Foreground(lipgloss.Color("#00B8D4")),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252")),
		timesUp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00C853")).
			Bold(true).
			Blink(true),
	}
}

// Presenter writes the countdown status line and the notices that interrupt
// it. It is used only from the engine goroutine.
type Presenter struct {
	w      io.Writer
	format string
	plain  bool
	style  styles
	help   help.Model
	keys   keymap
}

// NewPresenter returns a Presenter writing to w. When plain is set no styling
// is applied.
func NewPresenter(w io.Writer, format string, plain bool) *Presenter {
	if format != FormatCustom {
		format = FormatDefault
	}

	return &Presenter{
		w:      w,
		format: format,
		plain:  plain,
		style:  defaultStyles(),
		help:   help.New(),
		keys:   defaultKeymap,
	}
}

func (p *Presenter) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}

	return s.Render(text)
}

// FormatRemaining renders secs in the requested display format.
func FormatRemaining(secs int, format string) string {
	d := models.FromSeconds(secs)

	if format == FormatCustom {
		return fmt.Sprintf(
			"%d days, %d hours, %d minutes, %d seconds",
			d.Days,
			d.Hours,
			d.Minutes,
			d.Seconds,
		)
	}

	return fmt.Sprintf("%dd %dh %dm %ds", d.Days, d.Hours, d.Minutes, d.Seconds)
}

// Render overwrites the status line with the remaining time.
func (p *Presenter) Render(remaining int, taskName string) {
	var s strings.Builder

	s.WriteString(clearLine)

	if taskName != "" {
		s.WriteString(p.render(p.style.task, "["+taskName+"]") + " ")
	}

	s.WriteString("Time remaining: ")
	s.WriteString(p.render(p.style.remaining, FormatRemaining(remaining, p.format)))

	_, _ = io.WriteString(p.w, s.String())
}

func (p *Presenter) line(text string) {
	// \r\n because the terminal is in raw mode while the timer runs
	_, _ = io.WriteString(p.w, clearLine+text+"\r\n")
}

// Notice prints msg on its own line.
func (p *Presenter) Notice(msg string) {
	p.line(p.render(p.style.notice, msg))
}

// Error prints msg on its own line.
func (p *Presenter) Error(msg string) {
	p.line(p.render(p.style.err, msg))
}

// TimesUp announces the end of a countdown and rings the terminal bell.
func (p *Presenter) TimesUp() {
	p.line(p.render(p.style.timesUp, "Time's up!") + "\a")
}

// Help prints the available keys.
func (p *Presenter) Help() {
	p.line(p.help.ShortHelpView(p.keys.bindings()))
}

// Done ends the status line so that subsequent output starts on a fresh
// line.
func (p *Presenter) Done() {
	_, _ = io.WriteString(p.w, clearLine)
}
