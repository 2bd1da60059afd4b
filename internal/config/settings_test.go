package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("SATD_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.Equal(t, DefaultQueueCapacity, settings.EffectiveQueueCapacity())
	assert.Equal(t, filepath.Join(GetSatdHome(), "settings.db"), settings.EffectiveDBPath())
}

func TestLoadSettings_Values(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SATD_HOME", home)

	content := `{"debug": true, "queue_capacity": 4, "max_log_files": 20, "default_language": "fr_FR.UTF-8", "db_path": "/tmp/satd.db"}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, 4, settings.EffectiveQueueCapacity())
	assert.Equal(t, 20, *settings.MaxLogFiles)
	assert.Equal(t, "fr_FR.UTF-8", settings.DefaultLanguage)
	assert.Equal(t, "/tmp/satd.db", settings.EffectiveDBPath())
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"debug": `},
		{"zero capacity", `{"queue_capacity": 0}`},
		{"negative log files", `{"max_log_files": -1}`},
		{"unknown language", `{"default_language": "xx_XX"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettingsFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("SATD_HOME", filepath.Join(t.TempDir(), "nested"))
	capacity := 6

	require.NoError(t, SaveSettings(&Settings{QueueCapacity: &capacity}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 6, settings.EffectiveQueueCapacity())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, ".satd"), ExpandPath("~/.satd"))
	assert.Equal(t, "/var/lib/satd", ExpandPath("/var/lib/satd"))
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Equal(t, DefaultQueueCapacity, example["queue_capacity"])
	assert.Equal(t, "en_GB.UTF-8", example["default_language"])
	assert.Len(t, example, 5)
}
