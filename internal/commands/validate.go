package commands

import (
	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/schema"
	"vmtemplate-generator/internal/validate"
)

func registerValidateCmd(parent *cobra.Command, g *globalOptions) {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate templates and rendered XML",
	}

	var mappingsPath string

	templateCmd := &cobra.Command{
		Use:   "template FILE",
		Short: "Check template syntax and variable use",
		Example: `  vmgen validate template template.vm
  vmgen validate template template.vm --mappings mappings.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args[0])
			if err != nil {
				return err
			}

			var mappings []schema.MappingSuggestion

			if mappingsPath != "" {
				mf, err := mapping.LoadFile(mappingsPath)
				if err != nil {
					return err
				}

				mappings = mf.Suggestions()
			}

			_, syntax := validate.Syntax(text)
			_, vars := validate.Variables(text, mappings)

			var diags diagnostic.Diagnostics

			diags.Add(syntax...)
			diags.Add(vars...)

			printDiagnostics(cmd.OutOrStdout(), diags.All())

			return failOnErrors("template", diags.All())
		},
	}
	templateCmd.Flags().StringVar(&mappingsPath, "mappings", "", "Mapping file whose variables must be declared")

	outputCmd := &cobra.Command{
		Use:   "output XML_FILE XSD_FILE",
		Short: "Validate rendered XML against an XSD",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xml, err := readText(args[0])
			if err != nil {
				return err
			}

			xsdText, err := readText(args[1])
			if err != nil {
				return err
			}

			_, diags := validate.Output(xml, xsdText)
			printDiagnostics(cmd.OutOrStdout(), diags)

			return failOnErrors("output", diags)
		},
	}

	cmd.AddCommand(templateCmd, outputCmd)
	parent.AddCommand(cmd)
}
