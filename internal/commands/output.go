package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"vmtemplate-generator/internal/diagnostic"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
)

// printValue writes v in the selected output format.
func (g *globalOptions) printValue(w io.Writer, v any) error {
	if g.dump {
		spew.Fdump(w, v)
		return nil
	}

	switch g.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}
}

// printDiagnostics writes one line per diagnostic and a summary line.
func printDiagnostics(w io.Writer, list []diagnostic.Diagnostic) {
	for _, d := range list {
		label := warningStyle.Render("warning")
		if d.IsError() {
			label = errorStyle.Render("error")
		}

		fmt.Fprintf(w, "%s: %s\n", label, d.String())
	}

	errs := diagnostic.CountErrors(list)
	if errs == 0 {
		fmt.Fprintf(w, "%s (%d warnings)\n", okStyle.Render("valid"), len(list))
		return
	}

	fmt.Fprintf(w, "%s (%d errors, %d warnings)\n", errorStyle.Render("invalid"), errs, len(list)-errs)
}

// failOnErrors turns error diagnostics into a command error.
func failOnErrors(what string, list []diagnostic.Diagnostic) error {
	var diags diagnostic.Diagnostics

	diags.Add(list...)

	if diags.HasErrors() {
		return fmt.Errorf("%s is invalid: %w", what, diags.Error())
	}

	return nil
}
