package timer

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

const ctrlC = 0x03

type keymap struct {
	pause  key.Binding
	resume key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "save & quit"),
	),
}

// keyName converts a raw byte read in raw mode to the name used by the
// bindings.
func keyName(b byte) string {
	if b == ctrlC {
		return "ctrl+c"
	}

	return string(rune(b))
}

// command maps a keystroke to an engine command. Unbound keys are reported
// with ok set to false.
func (k keymap) command(b byte) (cmd Command, ok bool) {
	name := keyName(b)

	switch {
	case slices.Contains(k.pause.Keys(), name):
		return CmdPause, true
	case slices.Contains(k.resume.Keys(), name):
		return CmdResume, true
	case slices.Contains(k.quit.Keys(), name):
		return CmdQuit, true
	}

	return 0, false
}

func (k keymap) bindings() []key.Binding {
	return []key.Binding{k.pause, k.resume, k.quit}
}
