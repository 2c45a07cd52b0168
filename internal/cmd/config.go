package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/pathcalc/internal/clog"
	"github.com/xdg/pathcalc/internal/config"
	"github.com/xdg/pathcalc/internal/term"
)

func (a *app) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage pathcalc's configuration.

The configuration file is stored at ~/.config/pathcalc/config.yaml
(or $XDG_CONFIG_HOME/pathcalc/config.yaml if XDG_CONFIG_HOME is set).
Use --config to read another file.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective config",
			Long:  `Print the effective configuration, including flag overrides, as YAML.`,
			Args:  cobra.NoArgs,
			RunE:  a.runConfigShow,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print config file path",
			Args:  cobra.NoArgs,
			RunE:  a.runConfigPath,
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create default config file",
			Long: `Create a commented configuration file with default values.
If the file already exists, this command does nothing.`,
			Args: cobra.NoArgs,
			RunE: a.runConfigInit,
		},
	)
	return configCmd
}

func (a *app) runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	term.Printf("%s", data)
	return nil
}

func (a *app) runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	term.Println(path)
	return nil
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}

	created, err := config.WriteDefault(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if created {
		clog.Info("config: wrote default config to %s", path)
		term.Printf("Created default config at: %s\n", path)
	} else {
		term.Printf("Config already exists at: %s\n", path)
	}
	return nil
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultPath()
}
