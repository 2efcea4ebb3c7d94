package commands

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/heron/internal/catalog"
	"github.com/simonhull/firebird-suite/heron/internal/cube"
	"github.com/simonhull/firebird-suite/heron/internal/output"
	"github.com/spf13/cobra"
)

// ValidateCmd creates the 'validate' command
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate cube schema files",
		Long: `Validate cube schema files or directories of them.

Every violation in a file is reported with its line number. With no
arguments the configured schemas.path is validated.

Examples:
  heron validate
  heron validate schemas/characters.yml
  heron validate schemas/ other/orders.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{session.cfg.Schemas.Path}
			}

			var files []string
			for _, p := range paths {
				found, err := catalog.SchemaFiles(p, session.cfg.Schemas.Extensions)
				if err != nil {
					return fmt.Errorf("failed to scan %s: %w", p, err)
				}
				files = append(files, found...)
			}
			if len(files) == 0 {
				output.Warn("No schema files found")
				return nil
			}

			failed := 0
			for _, file := range files {
				output.Verbose(fmt.Sprintf("Validating %s", file))

				def, err := cube.Parse(file)
				if err != nil {
					failed++
					reportInvalid(file, err)
					continue
				}
				output.Success(fmt.Sprintf("%s: %s is valid (%d measures, %d dimensions)",
					file, def.Name, len(def.Measures), len(def.Dimensions)))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d schema files failed validation", failed, len(files))
			}
			return nil
		},
	}
}

// reportInvalid prints each validation error of a file on its own line
func reportInvalid(file string, err error) {
	output.Error(file)

	var errs cube.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			output.Step(e.Error())
		}
		return
	}
	output.Step(err.Error())
}
