package config

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PromptRepeat asks whether the timer that just completed should run again.
// Pressing Enter accepts.
func PromptRepeat() (bool, error) {
	repeat := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you want to repeat the same time again?").
				Affirmative("Yes").
				Negative("No").
				Value(&repeat),
		),
	)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("form interaction failed: %w", err)
	}

	return repeat, nil
}
