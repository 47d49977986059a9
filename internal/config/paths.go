// Package config resolves where switchy keeps its data.
//
// The config directory follows the platform convention for per-application
// configuration. It is not overridable through flags or environment variables
// of switchy's own; on Linux the standard XDG variables apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-application directory created under the platform
// config root.
const appDirName = "switchy"

// DefaultDir returns the platform-specific config directory for switchy.
//
// Linux:   $XDG_CONFIG_HOME/switchy (fallback ~/.config/switchy)
// macOS:   ~/Library/Application Support/switchy
// Windows: %APPDATA%/switchy
func DefaultDir() (string, error) {
	if runtime.GOOS == "linux" {
		// os.UserConfigDir also honors XDG_CONFIG_HOME, but spelling the
		// chain out keeps the home fallback testable.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}
