package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/hourglass/internal/models"
)

// Completion sounds.
const (
	SoundBell = "bell"
	SoundTone = "tone"
	SoundOff  = "off"
)

// Sounds lists the values accepted for notifications.sound.
var Sounds = []string{SoundBell, SoundTone, SoundOff}

const (
	toneFrequency = 880
	toneLength    = 400 * time.Millisecond
	sampleRate    = beep.SampleRate(44100)
)

// Alerts is the Notifier used outside tests. Each alert is independent: a
// failing desktop notification does not prevent the session command from
// running.
type Alerts struct {
	Desktop    bool
	Sound      string
	SessionCmd string

	// replaced in tests
	notify func(title, msg string) error
	play   func(sound string) error
	start  func(name string, args ...string) error
}

// NewAlerts returns a Notifier for the configured alerts.
func NewAlerts(desktop bool, sound, sessionCmd string) *Alerts {
	return &Alerts{
		Desktop:    desktop,
		Sound:      sound,
		SessionCmd: sessionCmd,
		notify:     desktopNotify,
		play:       playSound,
		start:      startCommand,
	}
}

func (a *Alerts) SessionCompleted(sess models.Session) error {
	var errs []error

	if a.Desktop {
		err := a.notify("Time's up!", completionMessage(sess))
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}

		if a.Sound != "" && a.Sound != SoundOff {
			err = a.play(a.Sound)
			if err != nil {
				errs = append(errs, fmt.Errorf("unable to play sound: %w", err))
			}
		}
	}

	err := a.runSessionCmd()
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func completionMessage(sess models.Session) string {
	d := FormatRemaining(sess.Duration.TotalSeconds(), FormatDefault)

	if sess.TaskName == "" {
		return "Timer finished after " + d
	}

	return sess.TaskName + " finished after " + d
}

// runSessionCmd starts the configured session command without waiting for it
// to exit, so that a long command does not hold up the next countdown.
func (a *Alerts) runSessionCmd() error {
	if a.SessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.SessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	err = a.start(cmdSlice[0], cmdSlice[1:]...)
	if err != nil {
		return fmt.Errorf("session command failed: %w", err)
	}

	return nil
}

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// startCommand starts name and reaps it in the background. A failure after
// the process started is only logged.
func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	err := cmd.Start()
	if err != nil {
		return err
	}

	go func() {
		err := cmd.Wait()
		if err != nil {
			slog.Warn(
				"session command failed",
				slog.String("cmd", cmd.String()),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

func playSound(sound string) error {
	switch sound {
	case SoundBell:
		return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	case SoundTone:
		return playTone()
	}

	return nil
}

// playTone plays a short sine tone and blocks until it is done.
func playTone() error {
	tone, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return err
	}

	bufferSize := 10

	err = speaker.Init(sampleRate, sampleRate.N(time.Second/time.Duration(bufferSize)))
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(toneLength), tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	speaker.Clear()

	return nil
}
