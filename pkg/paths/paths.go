// Package paths provides centralized path handling for fscode.
// It implements XDG Base Directory specification compliance so that
// the config file and log file land in predictable locations.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for fscode
	EnvConfigDir = "FSCODE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for fscode
	EnvStateDir = "FSCODE_STATE_DIR"
)

// AppDirName is the directory name for fscode-specific files
const AppDirName = "fscode"

// ConfigFileName is the name of the user configuration file
const ConfigFileName = "fscode.toml"

// LogFileName is the name of the log file
const LogFileName = "fscode.log"

// ConfigDir returns the fscode configuration directory,
// respecting FSCODE_CONFIG_DIR before falling back to XDG.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the fscode state directory,
// respecting FSCODE_STATE_DIR before falling back to XDG.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// expandHome expands ~ at the start of a path to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
