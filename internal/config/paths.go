package config

import (
	"os"
	"path/filepath"
)

// GetSatdHome returns SATD_HOME or the ~/.satd default
func GetSatdHome() string {
	satdHome := os.Getenv("SATD_HOME")
	if satdHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".satd"
		}
		return filepath.Join(homeDir, ".satd")
	}
	return ExpandPath(satdHome)
}

// GetDBPath returns $SATD_HOME/settings.db
func GetDBPath() string {
	return filepath.Join(GetSatdHome(), "settings.db")
}

// GetSettingsPath returns $SATD_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetSatdHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
