package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"satd/internal/config"
	"satd/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version       kong.VersionFlag `help:"Show version information"`
	Debug         bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile     string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles   int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	QueueCapacity int              `help:"Maximum number of outstanding proactive commands" default:"10" env:"SATD_QUEUE_CAPACITY"`
	DBPath        string           `help:"Path of the settings database (default: $SATD_HOME/settings.db)" env:"SATD_DB_PATH"`

	Replay   ReplayCmd   `cmd:"replay" help:"Run a scenario file through the proactive session"`
	Simulate SimulateCmd `cmd:"simulate" help:"Run a scenario file, answering prompts interactively"`
	Language LanguageCmd `cmd:"language" help:"Read or change the persisted card language"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, show)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be positive, got %d", c.QueueCapacity)
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("SATD_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SATD_DEBUG_FILE", logFilePath)
		}
	}

	logging.Logger.Debug("CLI configured",
		"queue_capacity", c.QueueCapacity,
		"db_path", c.DBPath,
		"max_log_files", c.MaxLogFiles)

	// Create container AFTER logging is initialized so GORM's logger has a target
	container, err := NewContainer(ContainerOptions{
		DBPath:        c.DBPath,
		Out:           os.Stdout,
		QueueCapacity: c.QueueCapacity,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SATD_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SATD_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.QueueCapacity == config.DefaultQueueCapacity {
		if _, hasEnv := os.LookupEnv("SATD_QUEUE_CAPACITY"); !hasEnv {
			c.QueueCapacity = c.settings.EffectiveQueueCapacity()
		}
	}

	if c.DBPath == "" {
		c.DBPath = c.settings.EffectiveDBPath()
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
