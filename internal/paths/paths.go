// Package paths resolves where artscan keeps its configuration and logs.
package paths

import (
	"os"
	"path/filepath"
)

// ArtscanDir returns the artscan config directory, typically
// ~/.config/artscan on Linux.
func ArtscanDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "artscan"), nil
}

// ConfigPath returns the path to the artscan config file.
func ConfigPath() (string, error) {
	dir, err := ArtscanDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns the default log file location.
func DefaultLogPath() (string, error) {
	dir, err := ArtscanDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "artscan.log"), nil
}
