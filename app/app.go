package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourglass/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the hourglass app instance.
func Get() *cli.App {
	hourglassApp := &cli.App{
		Name: "hourglass",
		Usage: `
		Hourglass is a command-line timer. Start a countdown, pause and resume it
		from the keyboard, and analyze the time you have logged.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			hoursFlag,
			minutesFlag,
			daysFlag,
			secondsFlag,
			formatFlag,
			loadFlag,
			analyzeFlag,
			timerFlag,
			taskNameFlag,
			outputFlag,
			sinceFlag,
			untilFlag,
			repeatFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return hourglassApp
}
