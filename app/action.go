package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourglass/internal/config"
	"github.com/ayoisaiah/hourglass/internal/logger"
	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/osutil"
	"github.com/ayoisaiah/hourglass/internal/pathutil"
	"github.com/ayoisaiah/hourglass/report"
	"github.com/ayoisaiah/hourglass/stats"
	"github.com/ayoisaiah/hourglass/store"
	"github.com/ayoisaiah/hourglass/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envHourglassNoColor = "HOURGLASS_NO_COLOR"
)

const (
	noSessionsMsg = "No previous timer data found."
	exitingMsg    = "Exiting..."
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig merges the config file and the command-line flags, then
// validates the result.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// storePath returns the configured store location, or the default one for
// the backend.
func storePath(cfg *config.Config) string {
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}

	switch cfg.Store.Backend {
	case store.BackendBolt:
		return pathutil.BoltFilePath()
	case store.BackendSQLite:
		return pathutil.SQLiteFilePath()
	}

	return pathutil.DataFilePath()
}

// loadHistory reads the saved sessions. Malformed data is reported as a
// warning and treated as an empty history.
func loadHistory(st store.Store) (models.History, error) {
	h, err := st.Load()
	if errors.Is(err, store.ErrMalformedData) {
		slog.Warn("discarding malformed timer data", slog.Any("error", err))
		report.Warning(err)

		return models.History{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load timer data: %w", err)
	}

	return h, nil
}

// defaultAction loads or analyzes the saved sessions, or starts a timer,
// depending on the flags.
func defaultAction(ctx *cli.Context) error {
	if ctx.NumFlags() == 0 && ctx.Args().Len() == 0 {
		fmt.Fprint(config.Stdout, welcomeText())
		return nil
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Options{
		Path:  pathutil.LogFilePath(),
		Level: cfg.Log.Level,
	})
	if err != nil {
		return err
	}

	defer closer.Close()

	slog.Debug("configuration loaded", slog.String("config", cfg.String()))

	st, err := store.Open(store.Options{
		Backend: cfg.Store.Backend,
		Path:    storePath(cfg),
	})
	if err != nil {
		return err
	}

	defer st.Close()

	history, err := loadHistory(st)
	if err != nil {
		return err
	}

	switch {
	case cfg.CLI.Load:
		return loadAction(config.Stdout, cfg, history)
	case cfg.CLI.Analyze:
		return analyzeAction(config.Stdout, cfg, history)
	}

	d, restart, ok := cfg.Countdown()
	if !ok {
		fmt.Fprint(config.Stdout, welcomeText())
		return nil
	}

	return runTimer(ctx, cfg, st, history, d, restart)
}

// runTimer runs the countdown until it finishes. A completed timer that does
// not restart may be run again when ask_to_repeat is on.
func runTimer(
	ctx *cli.Context,
	cfg *config.Config,
	st store.Store,
	history models.History,
	d models.Duration,
	restart *models.Duration,
) error {
	plain := cfg.Display.NoColor || !pterm.PrintColor

	p := timer.NewPresenter(config.Stdout, cfg.Display.Format, plain)

	alerts := timer.NewAlerts(
		cfg.Notifications.Enabled,
		cfg.Notifications.Sound,
		cfg.Settings.SessionCmd,
	)

	for {
		engine := timer.New(timer.Options{
			Store:     st,
			History:   history,
			Presenter: p,
			Notifier:  alerts,
		})

		ctrl := timer.NewController(os.Stdin)

		err := ctrl.Start()
		if err != nil {
			return err
		}

		p.Help()
		engine.Start(d, restart, cfg.CLI.TaskName)

		outcome := engine.Run(ctx.Context, ctrl.Commands())

		ctrl.Stop()

		history = engine.History()

		slog.Info("timer finished", slog.String("outcome", outcome.String()))

		if outcome != timer.OutcomeCompleted || restart != nil ||
			!cfg.Settings.AskToRepeat {
			return nil
		}

		again, err := config.PromptRepeat()
		if err != nil {
			return err
		}

		if !again {
			report.Info(exitingMsg)
			return nil
		}
	}
}

// loadAction prints the saved sessions in the requested format.
func loadAction(w io.Writer, cfg *config.Config, h models.History) error {
	h = store.Filter(h, cfg.CLI.Since, cfg.CLI.Until)

	if len(h) == 0 && cfg.CLI.Output == config.OutputTable {
		report.Info(noSessionsMsg)
		return nil
	}

	return printHistory(w, h, cfg.CLI.Output)
}

// analyzeAction prints the aggregate analysis and the per-task breakdown.
func analyzeAction(w io.Writer, cfg *config.Config, h models.History) error {
	h = store.Filter(h, cfg.CLI.Since, cfg.CLI.Until)

	a := store.Analyze(h)

	_, err := fmt.Fprint(w, stats.Summary(a)+stats.Tasks(stats.ByTask(h)))

	return err
}

// editConfigAction handles the edit-config command which opens the hourglass
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the defaults on first use so that there is something to edit
	cfg, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx.Context, editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HOURGLASS_NO_COLOR is set
	if _, exists := os.LookupEnv(envHourglassNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting hourglass")

	return nil
}
