package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/gen"
	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/plan"
	"vmtemplate-generator/internal/schema"
)

type generateOptions struct {
	jsonPath     string
	xsdPath      string
	mappingsPath string
	out          string
	noComments   bool
	noNullChecks bool
}

func registerGenerateCmd(parent *cobra.Command, g *globalOptions) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Velocity template",
		Long: `Generate a Velocity template from a form schema and an XSD. Mappings come from
--mappings when given, otherwise they are suggested automatically.`,
		Example: `  vmgen generate --json schema.json --xsd schema.xsd --out template.vm
  vmgen generate --json schema.json --xsd schema.xsd --mappings mappings.yaml --no-comments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "Form JSON schema file")
	cmd.Flags().StringVar(&opts.xsdPath, "xsd", "", "XSD schema file")
	cmd.Flags().StringVar(&opts.mappingsPath, "mappings", "", "Mapping file to use instead of auto-mapping")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write the template to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "Omit comments")
	cmd.Flags().BoolVar(&opts.noNullChecks, "no-null-checks", false, "Omit #if null checks")
	_ = cmd.MarkFlagRequired("json")
	_ = cmd.MarkFlagRequired("xsd")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, g *globalOptions, opts *generateOptions) error {
	form, err := readJSONSchema(opts.jsonPath)
	if err != nil {
		return err
	}

	parsed, _, err := readXSD(opts.xsdPath)
	if err != nil {
		return err
	}

	mappings, err := resolveMappings(g, opts.mappingsPath, form, parsed)
	if err != nil {
		return err
	}

	cfg := g.cfg.GenConfig()
	if opts.noComments {
		cfg.IncludeComments = false
	}

	if opts.noNullChecks {
		cfg.IncludeNullChecks = false
	}

	template, err := gen.Generate(mappings, parsed, cfg)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), template)
		return err
	}

	if err := os.WriteFile(opts.out, []byte(template), 0o644); err != nil { //nolint:gosec // template is not secret
		return err
	}

	g.logger.Info("template written", "file", opts.out, "lines", gen.CountLines(template))

	return nil
}

// resolveMappings loads and checks a mapping file, or auto-maps when path is empty.
func resolveMappings(
	g *globalOptions,
	path string,
	form *schema.ParsedJsonSchema,
	parsed *schema.ParsedXsdSchema,
) ([]schema.MappingSuggestion, error) {
	if path == "" {
		return plan.AutoMap(form, parsed, g.cfg.PlanConfig()).Mappings, nil
	}

	mf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(mf, form, parsed)
	for _, w := range diags.Warnings {
		g.logger.Warn("mapping file", "warning", w.String())
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf.Suggestions(), nil
}
