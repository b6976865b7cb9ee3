// Package report prints the one-line outcome messages of the non-interactive
// commands
package report

import (
	"github.com/pterm/pterm"
)

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Success(msg string) {
	pterm.Success.Println(msg)
}

// Warning reports a recoverable problem. The command carries on.
func Warning(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}
