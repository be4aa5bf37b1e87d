package config

import (
	"os"
	"path/filepath"
)

// GetSwipelistHome returns $SWIPELIST_HOME or ~/.swipelist
func GetSwipelistHome() string {
	home := os.Getenv("SWIPELIST_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".swipelist"
		}
		return filepath.Join(homeDir, ".swipelist")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SWIPELIST_HOME/items.db
func GetDBPath() string {
	return filepath.Join(GetSwipelistHome(), "items.db")
}

// GetSettingsPath returns $SWIPELIST_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetSwipelistHome(), "settings.json")
}

// GetHostKeyPath returns $SWIPELIST_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetSwipelistHome(), "ssh_host_ed25519")
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
