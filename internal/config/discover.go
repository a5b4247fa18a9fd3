package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar names the environment variable that overrides discovery.
const EnvVar = "CITYPAPER_CONFIG"

// DefaultPath is the per-user config file, honouring XDG_CONFIG_HOME.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./citypaper.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "citypaper", "config.toml")
}

// SearchPaths lists the files Discover tries, in order, when EnvVar is unset.
func SearchPaths() []string {
	return []string{"./citypaper.toml", DefaultPath(), "/etc/citypaper/config.toml"}
}

// Discover returns the config file to load. EnvVar wins when set and must
// point at an existing file; otherwise the first existing SearchPaths entry
// is used. ErrNotFound means the caller may fall back to Default.
func Discover() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvVar, p, err)
		}
		return p, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
