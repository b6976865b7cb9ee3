package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYS"),
		keyHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + keys + env
}

func keyHelp() string {
	return `p: pause the timer
		r: resume the timer
		q, Ctrl-C: save the elapsed time and quit`
}

func envHelp() string {
	return `
HOURGLASS_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

HOURGLASS_ENV: set to a name to keep a separate config file and timer data for that environment.`
}

func welcomeText() string {
	return `
    Welcome to Hourglass!

    Hourglass is a command-line timer application that allows you to start timers with different durations, save timer data, and analyze your timer usage.

    Commands and Options:
    --hours [number]    : Set the number of hours for the timer.
    --minutes [number]  : Set the number of minutes for the timer.
    --days [number]     : Set the number of days for the timer.
    --seconds [number]  : Set the number of seconds for the timer.
    --format [style]    : Remaining time format, 'default' or 'custom'.
    --taskName [name]   : Label the timer with a task name.
    --load              : Load the previous timer data.
    --analyze           : Analyze the previous timer data.
    --timer [1 or 2]    : Use a predefined timer.
    q                   : Quit the application.
    p                   : Pause the timer.
    r                   : Resume the timer.

    Example usage:
    hourglass --minutes 10      : Starts a timer for 10 minutes.
    hourglass --load            : Loads previously saved timer data.
    hourglass --analyze         : Analyzes your timer usage.
`
}
