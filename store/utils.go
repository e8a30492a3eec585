package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the per-user directory holding the settings file.
	AppDirName = "BitPlanner"
	// ConfigFileName is the settings file inside AppDirName.
	ConfigFileName = "config.yaml"
)

// ConfigDir returns the per-user settings directory.
// prefers the os config dir, falls back to ~/.config
func ConfigDir() (string, error) {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, AppDirName), nil
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", AppDirName), nil
	}
	return "", fmt.Errorf("unable to determine config directory")
}

// DefaultConfigPath returns the settings file path used when none is given.
func DefaultConfigPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(dir, ConfigFileName)
}
