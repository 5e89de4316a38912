package config

import (
	"os"
	"path/filepath"
)

// GetForkitHome returns FORKIT_HOME or ~/.forkit default
func GetForkitHome() string {
	forkitHome := os.Getenv("FORKIT_HOME")
	if forkitHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".forkit"
		}
		return filepath.Join(homeDir, ".forkit")
	}
	return ExpandPath(forkitHome)
}

// GetSettingsPath returns $FORKIT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetForkitHome(), "settings.json")
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
