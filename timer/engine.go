// Package timer runs the hourglass countdown: a single engine goroutine owns
// the timer state and consumes ticks and keyboard commands from one queue
package timer

import (
	"io"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/timeutil"
	"github.com/ayoisaiah/hourglass/store"
)

// Phase is the lifecycle stage of the engine.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// Ticker delivers the one second ticks that drive the countdown.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }

func (t timeTicker) Stop() { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Notifier is told about every session that runs to completion.
type Notifier interface {
	SessionCompleted(sess models.Session) error
}

type nopNotifier struct{}

func (nopNotifier) SessionCompleted(models.Session) error { return nil }

// Options configures a new Engine. Only Store is required.
type Options struct {
	Store     store.Store
	History   models.History
	Presenter *Presenter
	Notifier  Notifier
	Clock     func() time.Time
	NewTicker func(d time.Duration) Ticker
}

// Engine is the countdown state machine. None of its methods are safe for
// concurrent use: they are meant to be called from the goroutine executing
// Run, or directly in tests.
type Engine struct {
	store     store.Store
	history   models.History
	view      *Presenter
	notifier  Notifier
	now       func() time.Time
	newTicker func(d time.Duration) Ticker
	ticker    Ticker

	phase     Phase
	remaining int
	startedAt time.Time
	pausedAt  time.Time
	restart   *models.Duration
	current   models.Duration
	taskName  string

	finished bool
	outcome  Outcome
}

// New returns an idle engine.
func New(opts Options) *Engine {
	e := &Engine{
		store:     opts.Store,
		history:   opts.History,
		view:      opts.Presenter,
		notifier:  opts.Notifier,
		now:       opts.Clock,
		newTicker: opts.NewTicker,
	}

	if e.history == nil {
		e.history = models.History{}
	}

	if e.view == nil {
		e.view = NewPresenter(io.Discard, FormatDefault, true)
	}

	if e.notifier == nil {
		e.notifier = nopNotifier{}
	}

	if e.now == nil {
		e.now = time.Now
	}

	if e.newTicker == nil {
		e.newTicker = newTimeTicker
	}

	return e
}

// Phase reports the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Remaining reports the seconds left in the current countdown.
func (e *Engine) Remaining() int {
	return e.remaining
}

// History returns the session history including every record saved by this
// engine.
func (e *Engine) History() models.History {
	return e.history
}

// Finished reports whether the engine has nothing left to do.
func (e *Engine) Finished() bool {
	return e.finished
}

// Start begins a new countdown of d. When restart is non-nil the engine
// alternates between the two durations until told to quit.
func (e *Engine) Start(d models.Duration, restart *models.Duration, taskName string) {
	e.finished = false
	e.start(d, restart, taskName)
}

func (e *Engine) start(d models.Duration, restart *models.Duration, taskName string) {
	e.stopTicker()

	e.phase = Running
	e.remaining = d.TotalSeconds()
	e.startedAt = e.now()
	e.pausedAt = time.Time{}
	e.restart = restart
	e.current = d
	e.taskName = taskName
	e.ticker = e.newTicker(time.Second)

	slog.Debug(
		"countdown started",
		slog.Int("seconds", e.remaining),
		slog.Bool("restarts", restart != nil),
		slog.String("task", taskName),
	)

	e.view.Render(e.remaining, e.taskName)
}

func (e *Engine) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) tickC() <-chan time.Time {
	if e.ticker == nil {
		return nil
	}

	return e.ticker.C()
}

// Tick advances the countdown by one second. Reaching zero completes the
// run and saves a session record holding the duration of the countdown that
// just finished. After a resume that is the resumed countdown (the time left
// plus the seconds spent paused), not the duration first passed to Start.
// Ticks outside the Running phase are ignored.
func (e *Engine) Tick() {
	if e.phase != Running {
		return
	}

	if e.remaining > 0 {
		e.remaining--
		e.view.Render(e.remaining, e.taskName)
	}

	if e.remaining == 0 {
		e.complete()
	}
}

func (e *Engine) complete() {
	e.stopTicker()
	e.phase = Completed

	e.view.TimesUp()

	sess := models.NewSession(
		e.now(),
		e.taskName,
		models.FromSeconds(e.current.TotalSeconds()),
	)

	e.persist(sess)

	err := e.notifier.SessionCompleted(sess)
	if err != nil {
		slog.Warn("notification failed", slog.Any("error", err))
		e.view.Error(err.Error())
	}
}

// Advance moves a completed engine on. A restarting run swaps its two
// durations and starts again; otherwise the engine finishes. It reports
// whether a new countdown was started.
func (e *Engine) Advance() bool {
	if e.phase != Completed {
		return false
	}

	if e.restart == nil {
		e.finish(OutcomeCompleted)
		return false
	}

	next := *e.restart
	after := e.current

	e.view.Notice(noticeRestarting)
	e.Start(next, &after, e.taskName)

	return true
}

// Pause stops the countdown.
func (e *Engine) Pause() {
	if e.phase != Running {
		e.view.Notice(noticeNotRunning)
		return
	}

	e.stopTicker()
	e.pausedAt = e.now()
	e.phase = Paused

	e.view.Notice(noticePaused)
	e.view.Render(e.remaining, e.taskName)
}

// Resume restarts a paused countdown. The whole seconds spent paused are
// added to the remaining time, and the countdown no longer restarts when it
// completes.
func (e *Engine) Resume() {
	if e.phase != Paused {
		e.view.Notice(noticeNotPaused)
		return
	}

	elapsed := timeutil.FloorSeconds(e.pausedAt, e.now())
	e.remaining += elapsed
	e.pausedAt = time.Time{}

	e.view.Notice(noticeResumed)
	e.start(models.FromSeconds(e.remaining), nil, e.taskName)
}

// RequestExit saves the wall time elapsed since the countdown was last
// started and finishes the engine. An engine that never started finishes
// without saving anything.
func (e *Engine) RequestExit() {
	if e.finished {
		return
	}

	e.stopTicker()

	if e.phase == Idle {
		e.finish(OutcomeQuit)
		return
	}

	elapsed := timeutil.FloorSeconds(e.startedAt, e.now())
	sess := models.NewSession(e.now(), e.taskName, models.FromSeconds(elapsed))

	e.persist(sess)
	e.finish(OutcomeQuit)
}

func (e *Engine) finish(o Outcome) {
	e.stopTicker()
	e.pausedAt = time.Time{}
	e.finished = true
	e.outcome = o
}

func (e *Engine) persist(sess models.Session) {
	slog.Debug("saving session", slog.String("session", spew.Sdump(sess)))

	e.history = store.Append(e.history, sess)

	err := e.store.Flush(e.history)
	if err != nil {
		slog.Error("flush failed", slog.Any("error", err))
		e.view.Error(errSaveTimerData.Wrap(err).Error())

		return
	}

	slog.Info(
		"session saved",
		slog.String("task", sess.TaskName),
		slog.Int("seconds", sess.Duration.TotalSeconds()),
	)

	e.view.Notice(noticeSaved)
}
