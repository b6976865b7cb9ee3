package timer

import "github.com/ayoisaiah/hourglass/internal/apperr"

var (
	errSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errRawMode = &apperr.Error{
		Message: "unable to put the terminal into raw mode",
	}

	errSaveTimerData = &apperr.Error{
		Message: "Error saving timer data",
	}
)

// User-facing notices written by the engine.
const (
	noticeNotRunning = "Timer is not running."
	noticeNotPaused  = "Timer is not paused."
	noticePaused     = `Timer paused. Press "r" to resume.`
	noticeResumed    = "Timer resumed."
	noticeRestarting = "Restarting timer..."
	noticeExiting    = "Saving current timer data and exiting..."
	noticeSaved      = "Timer data saved successfully."
)
