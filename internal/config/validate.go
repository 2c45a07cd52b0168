package config

import (
	"fmt"

	"github.com/xdg/pathcalc"
	"github.com/xdg/pathcalc/internal/clog"
)

// Validate checks that style and log.level hold known values. Empty values
// are valid and fall back to defaults.
func Validate(cfg *Config) error {
	if _, err := pathcalc.ParseStyle(cfg.Style); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if _, err := clog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w, must be one of: debug, info, warn, error", err)
	}
	return nil
}
