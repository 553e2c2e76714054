package commands

import (
	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/jsonschema"
	"vmtemplate-generator/internal/xsd"
)

type parseOptions struct {
	strict bool
}

func registerParseCmd(parent *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a form JSON schema or an XSD into the canonical model",
	}

	jsonOpts := &parseOptions{}
	jsonCmd := &cobra.Command{
		Use:   "json FILE",
		Short: "Parse a form JSON schema",
		Example: `  # Show the fields of a form schema
  vmgen parse json schema.json -o json

  # Fail on documents in no recognised format instead of returning no fields
  vmgen parse json schema.json --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseJSON(cmd, g, jsonOpts, args[0])
		},
	}
	jsonCmd.Flags().BoolVar(&jsonOpts.strict, "strict", false, "Reject documents that are not in a recognised format")

	xsdOpts := &parseOptions{}
	xsdCmd := &cobra.Command{
		Use:   "xsd FILE",
		Short: "Parse an XSD schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseXSD(cmd, g, xsdOpts, args[0])
		},
	}
	xsdCmd.Flags().BoolVar(&xsdOpts.strict, "strict", false, "Reject documents whose root is not xs:schema")

	cmd.AddCommand(jsonCmd, xsdCmd)
	parent.AddCommand(cmd)
}

func runParseJSON(cmd *cobra.Command, g *globalOptions, opts *parseOptions, path string) error {
	text, err := readText(path)
	if err != nil {
		return err
	}

	if opts.strict {
		if err := jsonschema.CheckShape(text); err != nil {
			return err
		}
	}

	parsed, err := jsonschema.Parse(text)
	if err != nil {
		return err
	}

	return g.printValue(cmd.OutOrStdout(), parsed)
}

func runParseXSD(cmd *cobra.Command, g *globalOptions, opts *parseOptions, path string) error {
	text, err := readText(path)
	if err != nil {
		return err
	}

	if opts.strict {
		if err := xsd.CheckShape(text); err != nil {
			return err
		}
	}

	parsed, err := xsd.Parse(text)
	if err != nil {
		return err
	}

	return g.printValue(cmd.OutOrStdout(), parsed)
}
