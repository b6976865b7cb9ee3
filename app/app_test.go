package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/hourglass/internal/config"
	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/store"
)

func TestMain(m *testing.M) {
	disableStyling()

	os.Exit(m.Run())
}

type storeStub struct {
	mock.Mock
}

func (s *storeStub) Load() (models.History, error) {
	args := s.Called()
	return args.Get(0).(models.History), args.Error(1)
}

func (s *storeStub) Flush(h models.History) error {
	return s.Called(h).Error(0)
}

func (s *storeStub) Close() error {
	return s.Called().Error(0)
}

func sampleHistory() models.History {
	return models.History{
		{
			Timestamp: "2024-03-09T09:00:00Z",
			TaskName:  "write report",
			Duration:  models.Duration{Minutes: 25},
		},
		{
			Timestamp: "2024-03-10T09:00:00Z",
			Duration:  models.Duration{Seconds: 10},
		},
		{
			Timestamp: "3/11/2024, 9:00:00 AM",
			Duration:  models.Duration{},
		},
	}
}

func TestLoadHistoryMalformedIsWarning(t *testing.T) {
	st := &storeStub{}
	st.On("Load").Return(models.History{}, store.ErrMalformedData.Wrap(errors.New("bad")))

	h, err := loadHistory(st)

	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestLoadHistoryReadFailure(t *testing.T) {
	st := &storeStub{}
	st.On("Load").Return(models.History{}, os.ErrPermission)

	_, err := loadHistory(st)

	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestPrintHistoryJSON(t *testing.T) {
	var buf bytes.Buffer

	h := sampleHistory()

	require.NoError(t, printHistory(&buf, h, config.OutputJSON))

	var got models.History

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, h, got)
}

func TestPrintHistoryJSONEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printHistory(&buf, nil, config.OutputJSON))

	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintHistoryYAML(t *testing.T) {
	var buf bytes.Buffer

	h := sampleHistory()

	require.NoError(t, printHistory(&buf, h, config.OutputYAML))

	var got models.History

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, h, got)
}

func TestPrintHistoryTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printHistory(&buf, sampleHistory(), config.OutputTable))

	out := buf.String()

	assert.Contains(t, out, "Previous Timer Data:")
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "25 minutes")
	assert.Contains(t, out, "0 seconds")
	assert.Contains(t, out, "ago")
}

func TestLoadActionFilters(t *testing.T) {
	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.CLI.Output = config.OutputJSON
	cfg.CLI.Since = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, loadAction(&buf, cfg, sampleHistory()))

	var got models.History

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "2024-03-10T09:00:00Z", got[0].Timestamp)
}

func TestAnalyzeAction(t *testing.T) {
	var buf bytes.Buffer

	h := models.History{
		{Duration: models.Duration{}},
		{TaskName: "a", Duration: models.Duration{Seconds: 10}},
		{TaskName: "a", Duration: models.Duration{Seconds: 20}},
	}

	require.NoError(t, analyzeAction(&buf, &config.Config{}, h))

	out := buf.String()

	assert.Contains(t, out, "Total Timers: 2")
	assert.Contains(t, out, "Total Time: 30 seconds")
	assert.Contains(t, out, "Average Time: 15 seconds")
	assert.Contains(t, out, "a: 30 seconds in 2 sessions")
}

func TestStorePathOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Backend = store.BackendSQLite
	cfg.Store.Path = "/tmp/custom.sqlite"

	assert.Equal(t, "/tmp/custom.sqlite", storePath(cfg))
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}

func TestWelcomeText(t *testing.T) {
	assert.Contains(t, welcomeText(), "Welcome to Hourglass!")
	assert.False(t, pterm.PrintColor)
}
