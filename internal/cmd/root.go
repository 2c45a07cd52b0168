// Package cmd implements the CLI commands for pathcalc.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdg/pathcalc"
	"github.com/xdg/pathcalc/internal/clog"
	"github.com/xdg/pathcalc/internal/config"
	"github.com/xdg/pathcalc/internal/term"
	"github.com/xdg/pathcalc/internal/version"
)

// app holds the global flags and the state built from them before a
// subcommand runs.
type app struct {
	configPath string
	home       string
	workDir    string
	style      styleFlag
	debug      bool
	silent     bool

	cfg  *config.Config
	calc *pathcalc.Calculator
}

// styleFlag is a pflag.Value that only accepts known path styles.
type styleFlag struct {
	name string
}

var _ pflag.Value = (*styleFlag)(nil)

func (s *styleFlag) String() string { return s.name }

func (s *styleFlag) Set(v string) error {
	if _, err := pathcalc.ParseStyle(v); err != nil {
		return errors.New("must be one of: posix, windows, native")
	}
	s.name = strings.ToLower(v)
	return nil
}

func (s *styleFlag) Type() string { return "style" }

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathcalc",
		Short: "Path arithmetic without touching the filesystem",
		Long: `pathcalc computes with filesystem paths without checking that they exist.

It expands a leading ~ to the home directory, finds the deepest common
ancestor of two paths, and prints the relative path from one path to
another. Windows paths can be computed on any platform with --style windows.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pathcalc/config.yaml)")
	flags.StringVar(&a.home, "home", "", "home directory used to expand ~")
	flags.StringVar(&a.workDir, "cwd", "", "directory relative paths are resolved against")
	flags.Var(&a.style, "style", "path style: posix, windows or native")
	flags.BoolVar(&a.debug, "debug", false, "log debug messages to stderr")
	flags.BoolVarP(&a.silent, "silent", "s", false, "suppress normal output")

	root.AddCommand(
		a.homeCmd(),
		a.absCmd(),
		a.relativeRootCmd(),
		a.relCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides, and builds the
// calculator every subcommand uses.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	term.SetSilent(a.silent)
	if a.debug {
		// Show config loading on stderr before the config's log settings apply.
		if err := clog.Configure(clog.LevelDebug, "", true); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.style.name != "" {
		cfg.Style = a.style.name
	}
	if a.home != "" {
		cfg.Home = a.home
	}
	if a.workDir != "" {
		cfg.WorkDir = a.workDir
	}
	if err := config.ExpandPaths(cfg); err != nil {
		return fmt.Errorf("expand config paths: %w", err)
	}

	// Level was checked by config.Load.
	level, _ := clog.ParseLevel(cfg.Log.Level)
	if err := clog.Configure(level, cfg.Log.File, a.debug); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	calc, err := newCalculator(cfg)
	if err != nil {
		return err
	}
	clog.Debug("%s: style=%s home=%q workdir=%q", cmd.Name(), calc.Style(), cfg.Home, cfg.WorkDir)

	a.cfg = cfg
	a.calc = calc
	return nil
}

// newCalculator builds a Calculator from cfg. Empty home and workdir fall
// back to the process environment.
func newCalculator(cfg *config.Config) (*pathcalc.Calculator, error) {
	style, err := pathcalc.ParseStyle(cfg.Style)
	if err != nil {
		return nil, err
	}

	opts := []pathcalc.Option{pathcalc.WithStyle(style)}
	if cfg.Home != "" {
		opts = append(opts, pathcalc.WithHome(pathcalc.StaticHome(cfg.Home)))
	}
	if cfg.WorkDir != "" {
		opts = append(opts, pathcalc.WithWorkDir(pathcalc.StaticWorkDir(cfg.WorkDir)))
	}
	return pathcalc.New(opts...), nil
}

// Execute runs the command line and returns an *ExitCodeError on failure.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		clog.Debug("command failed: %v", err)
	}
	if cerr := clog.Close(); cerr != nil {
		clog.Warn("close log file: %v", cerr)
	}
	if err == nil {
		return nil
	}

	term.Error("%v", err)
	return exitError(err)
}
