package config

import (
	"os"
	"path/filepath"

	"github.com/xdg/pathcalc"
)

// Dir returns the pathcalc configuration directory. By default this is
// ~/.config/pathcalc; $XDG_CONFIG_HOME/pathcalc when XDG_CONFIG_HOME is set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join("~", ".config")
	}
	base, err := expandHome(pathcalc.New(), base)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pathcalc"), nil
}

// DefaultPath returns the full path to the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
