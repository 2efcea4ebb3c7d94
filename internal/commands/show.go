package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/heron/internal/config"
	"github.com/simonhull/firebird-suite/heron/internal/cube"
	"github.com/spf13/cobra"
)

// ShowCmd creates the 'show' command
func ShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the normalized form of a cube schema",
		Long: `Print a cube after loading: titles are filled in from entry names
and keys are sorted.

Examples:
  heron show schemas/characters.yml
  heron show schemas/characters.yml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := cube.Parse(args[0])
			if err != nil {
				return err
			}

			if format == "" {
				format = session.cfg.Output.Format
			}
			data, err := encode(def, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: yaml or json (default from config)")

	return cmd
}

func encode(def *cube.Cube, format string) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		return cube.Encode(def)
	case config.FormatJSON:
		return cube.EncodeJSON(def)
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported: yaml, json)", format)
	}
}
