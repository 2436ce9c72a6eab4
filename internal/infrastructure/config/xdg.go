package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName      = "dockyard"
	configName   = "config.toml"
	databaseName = "dockyard.sqlite"
)

// XDGDirs are dockyard's own directories under the XDG base directories.
// With ENV=dev all three point at ./.dev/dockyard.
type XDGDirs struct {
	ConfigHome string // config.toml and its schema
	DataHome   string // the layout database
	StateHome  string // logs
}

// GetXDGDirs resolves the directories from XDG_CONFIG_HOME, XDG_DATA_HOME
// and XDG_STATE_HOME, falling back to ~/.config, ~/.local/share and
// ~/.local/state.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve dev directory: %w", err)
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dev, DataHome: dev, StateHome: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	under := func(env string, fallback ...string) string {
		base := os.Getenv(env)
		if base == "" {
			base = filepath.Join(append([]string{home}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}
	return &XDGDirs{
		ConfigHome: under("XDG_CONFIG_HOME", ".config"),
		DataHome:   under("XDG_DATA_HOME", ".local", "share"),
		StateHome:  under("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

func configHome(d *XDGDirs) string { return d.ConfigHome }
func dataHome(d *XDGDirs) string   { return d.DataHome }
func stateHome(d *XDGDirs) string  { return d.StateHome }

func xdgPath(dir func(*XDGDirs) string, elem ...string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir(dirs)}, elem...)...), nil
}

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) { return xdgPath(configHome) }

// GetConfigFile returns the path of config.toml.
func GetConfigFile() (string, error) { return xdgPath(configHome, configName) }

// GetDatabaseFile returns the default layout database. Saved layouts are
// user data, so they live under XDG_DATA_HOME.
func GetDatabaseFile() (string, error) { return xdgPath(dataHome, databaseName) }

// GetLogDir returns where `dockyard run` writes its log file.
func GetLogDir() (string, error) { return xdgPath(stateHome, "logs") }

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
