package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"satd/internal/domain"
)

// DefaultQueueCapacity is the number of proactive commands that may be outstanding
const DefaultQueueCapacity = 10

// Settings represents the structure of $SATD_HOME/settings.json
type Settings struct {
	DBPath          string `json:"db_path,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	DefaultLanguage string `json:"default_language,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	QueueCapacity   *int   `json:"queue_capacity,omitempty"`
}

// Validate checks settings values that cannot be applied
func (s *Settings) Validate() error {
	if s.QueueCapacity != nil && *s.QueueCapacity <= 0 {
		return fmt.Errorf("queue_capacity must be positive, got %d", *s.QueueCapacity)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative, got %d", *s.MaxLogFiles)
	}
	if s.DefaultLanguage != "" {
		if _, err := domain.LanguageFromLocale(s.DefaultLanguage); err != nil {
			return fmt.Errorf("invalid default_language: %w", err)
		}
	}
	return nil
}

// EffectiveQueueCapacity returns the configured capacity or the default
func (s *Settings) EffectiveQueueCapacity() int {
	if s == nil || s.QueueCapacity == nil {
		return DefaultQueueCapacity
	}
	return *s.QueueCapacity
}

// EffectiveDBPath returns the configured database path or $SATD_HOME/settings.db
func (s *Settings) EffectiveDBPath() string {
	if s == nil || s.DBPath == "" {
		return GetDBPath()
	}
	return ExpandPath(s.DBPath)
}

// LoadSettings loads settings from $SATD_HOME/settings.json (or ~/.satd/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SATD_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
