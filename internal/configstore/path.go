package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName     = "rvgui"
	configFileName = "config.toml"
	homeEnvVar     = "RVGUI_HOME"
)

// ResolvePath returns the configuration directory and file. RVGUI_HOME wins,
// then $XDG_CONFIG_HOME/rvgui, then ~/.config/rvgui.
func ResolvePath() (string, string, error) {
	if override := strings.TrimSpace(os.Getenv(homeEnvVar)); override != "" {
		dir, err := filepath.Abs(filepath.Clean(override))
		if err != nil {
			return "", "", fmt.Errorf("resolve %s %q: %w", homeEnvVar, override, err)
		}
		return dir, filepath.Join(dir, configFileName), nil
	}

	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		dir := filepath.Join(base, appDirName)
		return dir, filepath.Join(dir, configFileName), nil
	}

	home, err := resolveHomeDir()
	if err != nil {
		return "", "", err
	}
	dir := filepath.Join(home, ".config", appDirName)
	return dir, filepath.Join(dir, configFileName), nil
}

// resolveHomeDir reads HOME-style variables on every call so tests that
// change the environment see the new value.
func resolveHomeDir() (string, error) {
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		home = strings.TrimSpace(os.Getenv("USERPROFILE"))
	}
	if home != "" {
		return filepath.Clean(home), nil
	}
	resolved, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(resolved) == "" {
		if err == nil {
			err = fmt.Errorf("home directory not found")
		}
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Clean(resolved), nil
}
