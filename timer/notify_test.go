package timer

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/osutil"
)

type alertCalls struct {
	notified []string
	played   []string
	ran      [][]string
}

func newTestAlerts(desktop bool, sound, cmd string, fail error) (*Alerts, *alertCalls) {
	calls := &alertCalls{}

	a := NewAlerts(desktop, sound, cmd)

	a.notify = func(title, msg string) error {
		calls.notified = append(calls.notified, title+": "+msg)
		return fail
	}

	a.play = func(sound string) error {
		calls.played = append(calls.played, sound)
		return fail
	}

	a.start = func(name string, args ...string) error {
		calls.ran = append(calls.ran, append([]string{name}, args...))
		return fail
	}

	return a, calls
}

func TestAlertsDisabled(t *testing.T) {
	a, calls := newTestAlerts(false, SoundTone, "", nil)

	err := a.SessionCompleted(models.Session{})

	assert.NoError(t, err)
	assert.Empty(t, calls.notified)
	assert.Empty(t, calls.played)
	assert.Empty(t, calls.ran)
}

func TestAlertsDesktop(t *testing.T) {
	a, calls := newTestAlerts(true, SoundBell, "", nil)

	err := a.SessionCompleted(models.Session{
		TaskName: "review",
		Duration: models.Duration{Minutes: 25},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Time's up!: review finished after 0d 0h 25m 0s"}, calls.notified)
	assert.Equal(t, []string{SoundBell}, calls.played)
}

func TestAlertsSoundOff(t *testing.T) {
	a, calls := newTestAlerts(true, SoundOff, "", nil)

	require.NoError(t, a.SessionCompleted(models.Session{}))
	assert.Empty(t, calls.played)
}

func TestSessionCmdIsSplit(t *testing.T) {
	a, calls := newTestAlerts(false, SoundOff, `notify-send "Session over" --urgency=low`, nil)

	require.NoError(t, a.SessionCompleted(models.Session{}))
	assert.Equal(t, [][]string{{"notify-send", "Session over", "--urgency=low"}}, calls.ran)
}

func TestSessionCmdUnbalancedQuotes(t *testing.T) {
	a, calls := newTestAlerts(false, SoundOff, `echo "oops`, nil)

	err := a.SessionCompleted(models.Session{})

	assert.ErrorIs(t, err, errSessionCmd)
	assert.Empty(t, calls.ran)
}

func TestAlertsCollectEveryFailure(t *testing.T) {
	fail := errors.New("boom")

	a, calls := newTestAlerts(true, SoundTone, "true", fail)

	err := a.SessionCompleted(models.Session{})

	require.Error(t, err)
	assert.ErrorIs(t, err, fail)
	assert.Len(t, calls.notified, 1)
	assert.Len(t, calls.played, 1)
	assert.Len(t, calls.ran, 1)
	assert.Contains(t, err.Error(), "unable to display notification")
	assert.Contains(t, err.Error(), "unable to play sound")
	assert.Contains(t, err.Error(), "session command failed")
}

func TestStartCommandDoesNotWait(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("uses sleep")
	}

	begin := time.Now()

	require.NoError(t, startCommand("sleep", "3"))

	assert.Less(t, time.Since(begin), time.Second)
}

func TestStartCommandMissingBinary(t *testing.T) {
	err := startCommand("hourglass-no-such-command")

	assert.Error(t, err)
}
