// Package paths provides centralized path resolution for tmux-up's config
// file and profile search locations.
//
// Layout (XDG-style):
//
//	Config:   ~/.config/tmux-up/config.yaml   (override: TMUX_UP_CONFIG_DIR, XDG_CONFIG_HOME)
//	Profiles: ./.tmux-up/                     (project-local, searched first)
//	          ~/.config/tmux-up/profiles/
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

const appName = "tmux-up"

// LocalDirName is the project-local profile directory, relative to the
// working directory.
const LocalDirName = ".tmux-up"

var (
	configDirOnce   sync.Once
	configDirCached string
)

// ConfigDir resolves the config directory.
// Priority: TMUX_UP_CONFIG_DIR env > $XDG_CONFIG_HOME/tmux-up > ~/.config/tmux-up/
func ConfigDir() string {
	configDirOnce.Do(func() {
		if env := os.Getenv("TMUX_UP_CONFIG_DIR"); env != "" {
			configDirCached = env
		} else if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDirCached = filepath.Join(xdg, appName)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				configDirCached = "."
			} else {
				configDirCached = filepath.Join(home, ".config", appName)
			}
		}
	})
	return configDirCached
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// UserProfileDir returns the per-user profile directory.
func UserProfileDir() string {
	return filepath.Join(ConfigDir(), "profiles")
}

// SearchDirs returns the profile search locations in precedence order.
func SearchDirs() []string {
	return []string{LocalDirName, UserProfileDir()}
}

// ResetForTest clears cached values so tests can re-run resolution logic.
// Only use in tests.
func ResetForTest() {
	configDirOnce = sync.Once{}
	configDirCached = ""
}
