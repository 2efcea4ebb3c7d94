package commands

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/heron/internal/cube"
	"github.com/simonhull/firebird-suite/heron/internal/output"
	"github.com/spf13/cobra"
)

// MergeCmd creates the 'merge' command
func MergeCmd() *cobra.Command {
	var outPath, format string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "merge <base> <overlay>",
		Short: "Layer a newer cube revision over an older one",
		Long: `Merge two revisions of the same cube.

Measures, dimensions and joins from the overlay replace the base entries of
the same name as a whole; entries only in the base are kept.

Examples:
  heron merge characters.yml characters.v2.yml
  heron merge characters.yml characters.v2.yml --dry-run
  heron merge characters.yml characters.v2.yml -o merged.yml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := cube.Parse(args[0])
			if err != nil {
				return fmt.Errorf("base %s: %w", args[0], err)
			}
			overlay, err := cube.Parse(args[1])
			if err != nil {
				return fmt.Errorf("overlay %s: %w", args[1], err)
			}

			merged, err := cube.MergeCube(base, overlay)
			if err != nil {
				return err
			}

			if dryRun {
				changes := cube.Changes(base, overlay)
				if len(changes) == 0 {
					output.Info(fmt.Sprintf("%s: no changes", merged.Name))
					return nil
				}
				output.Info(fmt.Sprintf("%s: %d change(s)", merged.Name, len(changes)))
				for _, c := range changes {
					output.Step(c.String())
				}
				return nil
			}

			if format == "" {
				format = session.cfg.Output.Format
			}
			data, err := encode(merged, format)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			output.Success(fmt.Sprintf("Wrote %s", outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the merged cube to a file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: yaml or json (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the changes without printing the merged cube")

	return cmd
}
