package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourglass/internal/models"
)

func sampleHistory() models.History {
	return models.History{
		{
			Timestamp: "2024-03-09T09:00:00Z",
			TaskName:  "write report",
			Duration:  models.Duration{Minutes: 25},
		},
		{
			Timestamp: "2024-03-09T09:30:00Z",
			Duration:  models.Duration{Minutes: 5},
		},
		{
			Timestamp: "2024-03-10T14:00:00Z",
			TaskName:  "review",
			Duration:  models.Duration{Hours: 1, Seconds: 12},
		},
	}
}

func writeDataFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "timer_data.json")

	err := os.WriteFile(path, []byte(contents), 0o644)
	require.NoError(t, err)

	return path
}

func TestJSONLoad(t *testing.T) {
	cases := []struct {
		Name      string
		Contents  string
		Want      models.History
		Malformed bool
	}{
		{
			Name:     "empty array",
			Contents: "[]",
			Want:     models.History{},
		},
		{
			Name: "records in save order",
			Contents: `[
  {"timestamp": "a", "taskName": "x", "duration": {"hours": 0, "minutes": 1, "days": 0, "seconds": 0}},
  {"timestamp": "b", "duration": {"seconds": 10}}
]`,
			Want: models.History{
				{Timestamp: "a", TaskName: "x", Duration: models.Duration{Minutes: 1}},
				{Timestamp: "b", Duration: models.Duration{Seconds: 10}},
			},
		},
		{
			Name: "fractional duration fields",
			Contents: `[
  {"timestamp": "3/9/2024, 2:00:00 PM", "taskName": "", "duration": {"hours": 0, "minutes": 10, "days": 0, "seconds": 0}},
  {"timestamp": "3/9/2024, 3:00:00 PM", "taskName": "", "duration": {"hours": 0, "minutes": 1.5, "days": 0, "seconds": 0}}
]`,
			Want: models.History{
				{Timestamp: "3/9/2024, 2:00:00 PM", Duration: models.Duration{Minutes: 10}},
				{
					Timestamp: "3/9/2024, 3:00:00 PM",
					Duration:  models.Duration{Minutes: 1, Seconds: 30},
				},
			},
		},
		{
			Name:      "invalid json",
			Contents:  `[{"timestamp": `,
			Want:      models.History{},
			Malformed: true,
		},
		{
			Name:      "empty file",
			Contents:  "",
			Want:      models.History{},
			Malformed: true,
		},
		{
			Name:     "object instead of array",
			Contents: `{"timestamp": "a"}`,
			Want:     models.History{},
		},
		{
			Name:     "null",
			Contents: `null`,
			Want:     models.History{},
		},
		{
			Name:      "array of wrong element type",
			Contents:  `[1, 2, 3]`,
			Want:      models.History{},
			Malformed: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			f := NewJSONFile(writeDataFile(t, tc.Contents))

			got, err := f.Load()

			if tc.Malformed {
				assert.ErrorIs(t, err, ErrMalformedData)
			} else {
				assert.NoError(t, err)
			}

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONLoadMissingFile(t *testing.T) {
	f := NewJSONFile(filepath.Join(t.TempDir(), "absent.json"))

	got, err := f.Load()

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestJSONFlushOverwrites(t *testing.T) {
	path := writeDataFile(t, `[{"timestamp": "old"}]`)
	f := NewJSONFile(path)

	h := sampleHistory()

	require.NoError(t, f.Flush(h))

	got, err := f.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(h, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestJSONFlushCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "timer_data.json")

	f := NewJSONFile(path)

	require.NoError(t, f.Flush(models.History{}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestJSONFlushWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer_data.json")

	f := NewJSONFile(path)

	h := models.History{
		{
			Timestamp: "2024-03-09T09:00:00Z",
			TaskName:  "",
			Duration:  models.Duration{Minutes: 1},
		},
	}

	require.NoError(t, f.Flush(h))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "timestamp": "2024-03-09T09:00:00Z",
    "taskName": "",
    "duration": {
      "hours": 0,
      "minutes": 1,
      "days": 0,
      "seconds": 0
    }
  }
]`

	assert.Equal(t, want, string(b))
}

func TestJSONFlushFailure(t *testing.T) {
	dir := t.TempDir()

	// a directory where the data file should be makes the rename fail
	path := filepath.Join(dir, "timer_data.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o644))

	err := NewJSONFile(path).Flush(sampleHistory())

	assert.ErrorIs(t, err, errFlush)
}

func TestAppendDoesNotAlias(t *testing.T) {
	h := make(models.History, 1, 4)
	h[0] = models.Session{Timestamp: "first"}

	a := Append(h, models.Session{Timestamp: "a"})
	b := Append(h, models.Session{Timestamp: "b"})

	assert.Len(t, h, 1)
	assert.Equal(t, "a", a[1].Timestamp)
	assert.Equal(t, "b", b[1].Timestamp)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Backend: BackendJSON, Path: filepath.Join(dir, "d.json")})
	require.NoError(t, err)
	assert.IsType(t, &JSONFile{}, s)

	_, err = Open(Options{Backend: "csv"})
	assert.ErrorIs(t, err, errUnknownBackend)
}

// backendContract exercises the behaviour every backend must share.
func backendContract(t *testing.T, s Store) {
	t.Helper()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	h := sampleHistory()

	require.NoError(t, s.Flush(h))

	got, err = s.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(h, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	shorter := h[:1]

	require.NoError(t, s.Flush(shorter))

	got, err = s.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(shorter, got); diff != "" {
		t.Errorf("flush must replace prior contents (-want +got):\n%s", diff)
	}
}

func TestJSONContract(t *testing.T) {
	backendContract(t, NewJSONFile(filepath.Join(t.TempDir(), "d.json")))
}
