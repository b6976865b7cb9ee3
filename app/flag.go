package app

import (
	"github.com/urfave/cli/v2"
)

var (
	hoursFlag = &cli.IntFlag{
		Name:  "hours",
		Usage: "Set the number of hours for the timer",
	}

	minutesFlag = &cli.IntFlag{
		Name:  "minutes",
		Usage: "Set the number of minutes for the timer",
	}

	daysFlag = &cli.IntFlag{
		Name:  "days",
		Usage: "Set the number of days for the timer",
	}

	secondsFlag = &cli.IntFlag{
		Name:  "seconds",
		Usage: "Set the number of seconds for the timer",
	}

	formatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "Remaining time format: 'default' (1d 2h 3m 4s) or 'custom' (1 days, 2 hours, 3 minutes, 4 seconds)",
		DefaultText: "default",
	}

	loadFlag = &cli.BoolFlag{
		Name:  "load",
		Usage: "Print the previously saved timer data",
	}

	analyzeFlag = &cli.BoolFlag{
		Name:  "analyze",
		Usage: "Analyze the previously saved timer data",
	}

	timerFlag = &cli.IntFlag{
		Name:  "timer",
		Usage: "Use a predefined timer: 1 (25m, restarting after 5m) or 2 (45m, restarting after 15m)",
	}

	taskNameFlag = &cli.StringFlag{
		Name:    "taskName",
		Aliases: []string{"task"},
		Usage:   "Label the timer with a task name",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format for --load: table, json or yaml",
		Value:   "table",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions saved on or after this date (e.g. 'last monday', '2024-03-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions saved on or before this date",
	}

	repeatFlag = &cli.BoolFlag{
		Name:  "repeat",
		Usage: "Offer to run the same timer again once it completes",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed timer",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
