// Package commands contains all CLI command definitions.
package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it with args.
func Execute(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := NewRootCmd(getenv)
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	g := &globalOptions{getenv: getenv}

	rootCmd := &cobra.Command{
		Use:   "vmgen",
		Short: "Generate Velocity templates mapping form JSON onto XSD-shaped XML",
		Long: `vmgen parses a form JSON schema and a departmental XSD, matches form fields
to XML elements, and generates a Velocity template that renders form data as XML.
The template can be validated statically and previewed against sample data.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "vmgen.yaml", "Config file (ignored when missing)")
	flags.StringVar(&g.envFile, "env-file", ".env", "Environment file loaded before config overrides")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&g.output, "output", "o", "yaml", "Output format (yaml, json)")
	flags.BoolVar(&g.dump, "dump", false, "Print the Go value instead of structured output")

	registerParseCmd(rootCmd, g)
	registerMapCmd(rootCmd, g)
	registerGenerateCmd(rootCmd, g)
	registerValidateCmd(rootCmd, g)
	registerPreviewCmd(rootCmd, g)
	registerSimilarityCmd(rootCmd, g)
	registerRunCmd(rootCmd, g)

	return rootCmd
}
