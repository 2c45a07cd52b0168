package config

// Default returns a Config with all defaults populated.
func Default() *Config {
	return &Config{
		Style: "native",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultConfigTemplate is written by WriteDefault. It must parse to the
// same values as Default().
const defaultConfigTemplate = `# pathcalc configuration.
# Command-line flags override every value here.

# Path style used to parse and print paths: posix, windows or native.
style: native

# Home directory used to expand a leading ~, including in workdir and
# log.file below. Empty uses the environment.
# home: /home/me

# Directory relative paths are resolved against. Empty uses the current
# working directory.
# workdir: /srv/project

log:
  # Minimum level: debug, info, warn or error.
  level: info
  # Optional log file; a leading ~ is expanded.
  # file: ~/.local/state/pathcalc/pathcalc.log
`
