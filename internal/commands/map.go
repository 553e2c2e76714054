package commands

import (
	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/match"
	"vmtemplate-generator/internal/plan"
)

type mapOptions struct {
	jsonPath string
	xsdPath  string
	save     string
	explain  bool
}

// fieldRanking is the ranked candidate list of one JSON field.
type fieldRanking struct {
	Field      string              `json:"field" yaml:"field"`
	Label      string              `json:"label,omitempty" yaml:"label,omitempty"`
	Candidates match.CandidateList `json:"candidates" yaml:"candidates"`
}

func registerMapCmd(parent *cobra.Command, g *globalOptions) {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Suggest field mappings between a form schema and an XSD",
		Example: `  # Print suggestions with unmapped fields and their best candidates
  vmgen map --json schema.json --xsd schema.xsd

  # Save suggestions for review
  vmgen map --json schema.json --xsd schema.xsd --save mappings.yaml

  # Show the best scored candidates of every field
  vmgen map --json schema.json --xsd schema.xsd --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMap(cmd, g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "Form JSON schema file")
	cmd.Flags().StringVar(&opts.xsdPath, "xsd", "", "XSD schema file")
	cmd.Flags().StringVar(&opts.save, "save", "", "Write the suggestions as a mapping file")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Print the ranked candidates of every field instead of the mappings")
	_ = cmd.MarkFlagRequired("json")
	_ = cmd.MarkFlagRequired("xsd")

	parent.AddCommand(cmd)
}

func runMap(cmd *cobra.Command, g *globalOptions, opts *mapOptions) error {
	form, err := readJSONSchema(opts.jsonPath)
	if err != nil {
		return err
	}

	parsed, _, err := readXSD(opts.xsdPath)
	if err != nil {
		return err
	}

	if opts.explain {
		limit := g.cfg.PlanConfig().MaxCandidates
		rankings := make([]fieldRanking, 0, len(form.Fields))

		for _, field := range form.Fields {
			rankings = append(rankings, fieldRanking{
				Field:      field.ID,
				Label:      field.Label,
				Candidates: plan.Rank(field, parsed).Top(limit),
			})
		}

		return g.printValue(cmd.OutOrStdout(), rankings)
	}

	result := plan.AutoMap(form, parsed, g.cfg.PlanConfig())

	g.logger.Debug("auto-mapped", "mapped", result.TotalMapped(), "unmapped", len(result.UnmappedJSON))

	if opts.save != "" {
		if err := mapping.WriteFile(mapping.FromSuggestions(parsed.RootElement, result.Mappings), opts.save); err != nil {
			return err
		}
	}

	return g.printValue(cmd.OutOrStdout(), result)
}
