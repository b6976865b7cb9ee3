package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithEnvironment(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(envName, "test")

	xdg.Reload()

	require.NoError(t, Initialize())

	assert.Equal(t, "hourglass", Dir())
	assert.Equal(
		t,
		filepath.Join(configHome, "hourglass", "config_test.yml"),
		ConfigFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "hourglass", "timer_data_test.json"),
		DataFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "hourglass", "hourglass_test.db"),
		BoltFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "hourglass", "hourglass_test.sqlite"),
		SQLiteFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "hourglass", "log", "hourglass_test.log"),
		LogFilePath(),
	)
}
