package timer

import "context"

// Command is an instruction posted to the engine by an input source.
type Command int

const (
	CmdPause Command = iota + 1
	CmdResume
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdQuit:
		return "quit"
	}

	return "unknown"
}

// Outcome describes how a run ended.
type Outcome int

const (
	// OutcomeCompleted means the countdown reached zero and did not restart.
	OutcomeCompleted Outcome = iota + 1
	// OutcomeQuit means the user quit or the process was interrupted.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeQuit:
		return "quit"
	}

	return "unknown"
}

func (e *Engine) handle(cmd Command) {
	switch cmd {
	case CmdPause:
		e.Pause()
	case CmdResume:
		e.Resume()
	case CmdQuit:
		e.view.Notice(noticeExiting)
		e.RequestExit()
	}
}

// Run drives a started engine until it finishes. It is the only code that
// touches the engine while it executes. Cancelling ctx is handled like a
// quit command, so progress is saved before Run returns.
func (e *Engine) Run(ctx context.Context, cmds <-chan Command) Outcome {
	defer e.stopTicker()

	for !e.finished {
		select {
		case <-ctx.Done():
			e.handle(CmdQuit)
		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}

			e.handle(cmd)
		case <-e.tickC():
			e.Tick()

			if e.phase == Completed {
				e.Advance()
			}
		}
	}

	e.view.Done()

	return e.outcome
}
