package commands

import (
	"log/slog"
	"os"

	"github.com/simonhull/firebird-suite/heron"
	"github.com/simonhull/firebird-suite/heron/internal/config"
	"github.com/simonhull/firebird-suite/heron/internal/logger"
	"github.com/simonhull/firebird-suite/heron/internal/output"
	"github.com/spf13/cobra"
)

// session holds what the root command resolves before any subcommand runs
var session struct {
	cfg *config.Config
	log *slog.Logger
}

// RootCmd creates and returns the root command for the heron CLI
func RootCmd() *cobra.Command {
	var verbose bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "heron",
		Short: "Load and validate semantic-layer cube schemas",
		Long: `Heron loads cube schema files, validates them, and merges schema revisions.

A cube describes one SQL row set with its measures (aggregations) and
dimensions (typed, groupable columns):

  name: Characters
  sql: select * from characters
  measures:
    numberOfUsers:
      type: count
  dimensions:
    birth:
      sql: birth
      type: time

Settings are read from heron.yml and HERON_* environment variables.`,
		Version:       heron.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Verbose = true
			}

			output.SetVerbose(cfg.Log.Verbose)
			session.cfg = cfg
			session.log = logger.New(os.Stderr, cfg.Log.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to heron.yml (default: ./heron.yml)")

	return cmd
}

// NewRootCmd returns the root command with every subcommand registered
func NewRootCmd() *cobra.Command {
	root := RootCmd()
	root.AddCommand(ValidateCmd())
	root.AddCommand(ShowCmd())
	root.AddCommand(MergeCmd())
	root.AddCommand(ListCmd())
	return root
}
