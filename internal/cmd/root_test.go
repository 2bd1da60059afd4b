package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satd/internal/config"
	"satd/internal/logging"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestApplySettings_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		cli      CLI
		env      map[string]string
		settings config.Settings
		want     CLI
	}{
		{
			name:     "settings fill defaults",
			cli:      CLI{MaxLogFiles: logging.DefaultMaxLogFiles, QueueCapacity: config.DefaultQueueCapacity},
			settings: config.Settings{Debug: boolPtr(true), MaxLogFiles: intPtr(5), QueueCapacity: intPtr(3), DBPath: "/data/satd.db"},
			want:     CLI{Debug: true, MaxLogFiles: 5, QueueCapacity: 3, DBPath: "/data/satd.db"},
		},
		{
			name:     "flags win over settings",
			cli:      CLI{MaxLogFiles: 7, QueueCapacity: 4, DBPath: "/flag.db"},
			settings: config.Settings{MaxLogFiles: intPtr(5), QueueCapacity: intPtr(3), DBPath: "/data/satd.db"},
			want:     CLI{MaxLogFiles: 7, QueueCapacity: 4, DBPath: "/flag.db"},
		},
		{
			name:     "env wins over settings",
			cli:      CLI{MaxLogFiles: logging.DefaultMaxLogFiles, QueueCapacity: config.DefaultQueueCapacity, DBPath: "/x.db"},
			env:      map[string]string{"SATD_QUEUE_CAPACITY": "10", "SATD_MAX_LOG_FILES": "1000", "SATD_DEBUG": "0"},
			settings: config.Settings{Debug: boolPtr(true), MaxLogFiles: intPtr(5), QueueCapacity: intPtr(3)},
			want:     CLI{MaxLogFiles: logging.DefaultMaxLogFiles, QueueCapacity: config.DefaultQueueCapacity, DBPath: "/x.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cli := tt.cli
			settings := tt.settings
			cli.SetSettings(&settings)

			cli.applySettings()

			assert.Equal(t, tt.want.Debug, cli.Debug)
			assert.Equal(t, tt.want.MaxLogFiles, cli.MaxLogFiles)
			assert.Equal(t, tt.want.QueueCapacity, cli.QueueCapacity)
			assert.Equal(t, tt.want.DBPath, cli.DBPath)
		})
	}
}

func TestApplySettings_DefaultDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SATD_HOME", home)

	cli := CLI{MaxLogFiles: logging.DefaultMaxLogFiles, QueueCapacity: config.DefaultQueueCapacity}
	cli.applySettings()

	assert.Equal(t, filepath.Join(home, "settings.db"), cli.DBPath)
	assert.Equal(t, home, cli.Effective().SatdHome)
}

func newTestCLI(t *testing.T, out *bytes.Buffer) *CLI {
	t.Helper()

	container, err := NewContainer(ContainerOptions{
		DBPath:        filepath.Join(t.TempDir(), "settings.db"),
		Out:           out,
		QueueCapacity: config.DefaultQueueCapacity,
	})
	require.NoError(t, err)

	cli := &CLI{Container: container, QueueCapacity: config.DefaultQueueCapacity}
	t.Cleanup(func() { _ = cli.Close() })
	return cli
}

func TestRunScenario(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(t, &out)

	err := runScenario(context.Background(), cli, "../scenario/testdata/session.yaml", nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "menu_selection")
	assert.Contains(t, out.String(), "select_item")
}

func TestRunScenario_MissingFile(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(t, &out)

	err := runScenario(context.Background(), cli, filepath.Join(t.TempDir(), "missing.yaml"), nil)

	assert.Error(t, err)
}

func TestLanguageCommands(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(t, &out)

	require.NoError(t, (&LanguageSetCmd{Locale: "it_IT.UTF-8"}).Run(cli))
	assert.Error(t, (&LanguageSetCmd{Locale: "xx"}).Run(cli))

	locale, err := cli.Container.ProactiveService.CurrentLanguage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "it_IT.UTF-8", locale)
	assert.NoError(t, (&LanguageGetCmd{}).Run(cli))
}
