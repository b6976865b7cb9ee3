package timer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/testutil"
)

type transcript struct {
	Name   string
	Format string
	Task   string
	Secs   int
	Script func(e *Engine)
	out    []byte
}

func (tc transcript) Output() ([]byte, string) {
	return tc.out, tc.Name
}

func TestTranscripts(t *testing.T) {
	cases := []transcript{
		{
			Name:   "countdown_with_task",
			Format: FormatDefault,
			Task:   "t",
			Secs:   2,
			Script: func(e *Engine) {
				e.Tick()
				e.Tick()
			},
		},
		{
			Name:   "pause_resume_custom",
			Format: FormatCustom,
			Secs:   3,
			Script: func(e *Engine) {
				e.Tick()
				e.Pause()
				e.Resume()
				e.Tick()
				e.Tick()
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			st := &storeStub{}
			st.On("Flush", mock.Anything).Return(nil)

			var buf bytes.Buffer

			e := New(Options{
				Store:     st,
				Presenter: NewPresenter(&buf, tc.Format, true),
				NewTicker: (&tickerFactory{}).New,
			})

			e.Start(models.Duration{Seconds: tc.Secs}, nil, tc.Task)
			tc.Script(e)

			tc.out = buf.Bytes()

			testutil.CompareGoldenFile(t, tc)
		})
	}
}
