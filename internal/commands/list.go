package commands

import (
	"fmt"
	"strconv"

	"github.com/simonhull/firebird-suite/heron/internal/catalog"
	"github.com/simonhull/firebird-suite/heron/internal/output"
	"github.com/spf13/cobra"
)

// ListCmd creates the 'list' command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "Load a schema directory into a catalog and summarize it",
		Long: `Load every cube schema under a directory and print one row per cube.

Files that fail validation are reported and skipped; the rest still load.
With no argument the configured schemas.path is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := session.cfg.Schemas.Path
			if len(args) == 1 {
				dir = args[0]
			}

			cat := catalog.New(session.log)
			report, err := cat.LoadDir(cmd.Context(), dir, session.cfg.Schemas.Extensions)
			if err != nil {
				return err
			}

			if cat.Len() > 0 {
				rows := make([][]string, 0, cat.Len())
				for _, name := range cat.List() {
					def, _ := cat.Get(name)
					rows = append(rows, []string{
						def.Name,
						strconv.Itoa(len(def.Measures)),
						strconv.Itoa(len(def.Dimensions)),
						strconv.Itoa(len(def.Joins)),
					})
				}
				output.Table([]string{"Cube", "Measures", "Dimensions", "Joins"}, rows)
			} else {
				output.Warn(fmt.Sprintf("No cubes loaded from %s", dir))
			}

			for _, f := range report.Failed {
				reportInvalid(f.Path, f.Err)
			}
			if len(report.Failed) > 0 {
				return fmt.Errorf("%d schema files failed to load", len(report.Failed))
			}
			return nil
		},
	}
}
