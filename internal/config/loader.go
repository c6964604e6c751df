package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPath names a configuration file, taking the place of -config when the
// flag is absent.
const EnvPath = "SCRIBBLE_CONFIG"

// Loader finds and reads the configuration file.
type Loader struct {
	Version      string // "dev" builds also read ./.scribblerc
	OverridePath string // -config, or $SCRIBBLE_CONFIG
	// ConfigDir replaces the user's config directory when set.
	ConfigDir string
}

// NewLoader creates a Loader. An empty overridePath falls back to
// $SCRIBBLE_CONFIG.
func NewLoader(version string, overridePath string) *Loader {
	if overridePath == "" {
		overridePath = os.Getenv(EnvPath)
	}
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first configuration file found. With no file the
// defaults are returned. A named file that does not exist is an error, and
// the defaults come back alongside it.
func (l *Loader) Load() (*Config, error) {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err != nil {
			return New(), fmt.Errorf("config %s: %w", l.OverridePath, err)
		}
	}
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// candidates lists the lookup order.
func (l *Loader) candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".scribblerc"))
		}
	}
	return append(paths, l.UserPath())
}

// GetConfigPath returns the first existing candidate, or "" when there is
// none.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.candidates() {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// SavePath is where "config save" writes.
func (l *Loader) SavePath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}
	return l.UserPath()
}

// UserPath returns $XDG_CONFIG_HOME/scribble/config.
func (l *Loader) UserPath() string {
	dir := l.ConfigDir
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(dir, "scribble", "config")
}
