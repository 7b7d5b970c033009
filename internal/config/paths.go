package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file,
// following the XDG Base Directory Specification:
//   - Linux: ~/.config/modship/config.yml
//   - macOS: ~/Library/Application Support/modship/config.yml
//   - Windows: %APPDATA%\modship\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "modship", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .modship/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".modship", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".modship"
}

// LegacyProjectConfigPath returns the old project-level JSON config
// location, kept readable for backward compatibility.
func LegacyProjectConfigPath() string {
	return filepath.Join(".modship", "config.json")
}
