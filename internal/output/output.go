// Package output provides styled terminal output for the heron CLI.
//
// Functions use lipgloss for styling but abstract away the details from callers.
// Output goes to stdout unless redirected with SetOutput.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)

	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetOutput redirects all output to w. Passing nil restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
//
// Example:
//
//	output.Success("Characters is valid")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✓ "+msg))
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✗ "+msg))
}

// Warn prints a warning in yellow.
func Warn(msg string) {
	fmt.Fprintln(out, warnStyle.Render("⚠ "+msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render("ℹ "+msg))
}

// Step prints an indented sub-item in gray.
//
// Example:
//
//	output.Step("added measure uniqueFirstNames")
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, stepStyle.Render("… "+msg))
	}
}

// Table prints rows under a bold header row with a rounded border.
func Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(stepStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(out, t.String())
}
