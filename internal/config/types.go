// Package config provides the pathcalc CLI configuration, stored as YAML
// at ~/.config/pathcalc/config.yaml.
package config

// Config is the top-level configuration.
type Config struct {
	// Style is the path style: posix, windows or native.
	Style string `yaml:"style,omitempty"`
	// Home overrides the environment's home directory when non-empty.
	Home string `yaml:"home,omitempty"`
	// WorkDir overrides the process working directory when non-empty.
	WorkDir string    `yaml:"workdir,omitempty"`
	Log     LogConfig `yaml:"log,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}
