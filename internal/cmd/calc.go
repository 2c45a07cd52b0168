package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/pathcalc/internal/clog"
	"github.com/xdg/pathcalc/internal/term"
)

func (a *app) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the home directory",
		Long: `Print the home directory used to expand a leading ~.

The value comes from --home, the config file, or the environment, in that
order. It is an error if none provides an absolute path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := a.calc.HomeDir()
			if err != nil {
				return err
			}
			term.Println(home.String())
			return nil
		},
	}
}

func (a *app) absCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abs PATH...",
		Short: "Print the absolute form of each path",
		Long: `Print the absolute form of each path, one per line.

A leading ~ is replaced by the home directory. Relative paths are resolved
against the working directory (or --cwd). The paths need not exist.`,
		Example: `  pathcalc abs ~/works/x
  pathcalc abs --cwd /srv src/../docs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				abs, err := a.calc.Abs(arg)
				if err != nil {
					return err
				}
				clog.Debug("abs: %q -> %q", arg, abs)
				term.Println(abs.String())
			}
			return nil
		},
	}
}

func (a *app) relativeRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root PATH_A PATH_B",
		Short: "Print the deepest common ancestor of two paths",
		Long: `Print the deepest directory that contains both paths.

Both paths are made absolute first. Paths on different drives or shares
have no common root and fail with exit code 2.`,
		Example: `  pathcalc root /home/gits/mkisos ~/trash
  pathcalc root --style windows 'D:\Games\Videos' 'D:\Games\Dota2'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.calc.RelativeRoot(args[0], args[1])
			if err != nil {
				return err
			}
			term.Println(root.String())
			return nil
		},
	}
}

func (a *app) relCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rel DST SRC",
		Aliases: []string{"related-to"},
		Short:   "Print the relative path from SRC to DST",
		Long: `Print the relative path that leads from SRC to DST.

The result climbs out of SRC with one .. per directory below the common
ancestor, then descends into DST. It prints . when both paths are equal.`,
		Example: `  pathcalc rel /home/cc/work/a /home/cc/App/demo   # ../../work/a`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := a.calc.RelatedTo(args[0], args[1])
			if err != nil {
				return err
			}
			term.Println(rel.String())
			return nil
		},
	}
}
