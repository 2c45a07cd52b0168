package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/pathcalc"
	"github.com/xdg/pathcalc/internal/clog"
)

// Load reads the configuration at path, or at DefaultPath() when path is
// empty. A missing file yields Default(). Set fields are laid over the
// defaults and validated. Paths are left as written; call ExpandPaths once
// flag overrides are applied.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
		path = p
	}
	clog.Debug("config: loading %s", path)

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		clog.Debug("config: %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		file, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		merge(cfg, file)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies every non-empty field of src into dst.
func merge(dst, src *Config) {
	if src.Style != "" {
		dst.Style = src.Style
	}
	if src.Home != "" {
		dst.Home = src.Home
	}
	if src.WorkDir != "" {
		dst.WorkDir = src.WorkDir
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
}

// ExpandPaths expands a leading ~ in home, workdir and log.file. Home is
// expanded with the environment's home directory. Workdir and log.file use
// the resulting home when one is configured, so a home set in the file or
// by flag also applies to them.
func ExpandPaths(cfg *Config) error {
	style, err := pathcalc.ParseStyle(cfg.Style)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	home, err := expandHome(pathcalc.New(pathcalc.WithStyle(style)), cfg.Home)
	if err != nil {
		return fmt.Errorf("home: %w", err)
	}
	cfg.Home = home

	var opts []pathcalc.Option
	if home != "" {
		opts = append(opts, pathcalc.WithHome(pathcalc.StaticHome(home)))
	}
	fields := []struct {
		name  string
		value *string
		calc  *pathcalc.Calculator
	}{
		{"workdir", &cfg.WorkDir, pathcalc.New(append([]pathcalc.Option{pathcalc.WithStyle(style)}, opts...)...)},
		// The log file is opened on the host, whatever style paths use.
		{"log.file", &cfg.Log.File, pathcalc.New(opts...)},
	}
	for _, f := range fields {
		expanded, err := expandHome(f.calc, *f.value)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.value = expanded
	}
	return nil
}

// expandHome replaces a leading ~ segment with calc's home directory. Other
// paths, including the empty string, are returned unchanged.
func expandHome(calc *pathcalc.Calculator, path string) (string, error) {
	segs := calc.Parse(path).Segments()
	if len(segs) == 0 || segs[0] != (pathcalc.Segment{Kind: pathcalc.Normal, Name: pathcalc.HomeMarker}) {
		return path, nil
	}
	abs, err := calc.Abs(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return abs.String(), nil
}
