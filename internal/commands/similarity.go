package commands

import (
	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/match"
)

// similarityResult reports a string comparison.
type similarityResult struct {
	Source      string    `json:"source" yaml:"source"`
	Target      string    `json:"target" yaml:"target"`
	Similarity  float64   `json:"similarity" yaml:"similarity"`
	Algorithm   string    `json:"algorithm" yaml:"algorithm"`
	Levenshtein int       `json:"levenshtein_distance" yaml:"levenshtein_distance"`
	Normalized  [2]string `json:"normalized" yaml:"normalized"`
}

func registerSimilarityCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(&cobra.Command{
		Use:     "similarity SOURCE TARGET",
		Short:   "Compare two names the way the field mapper does",
		Example: `  vmgen similarity lastName FamilyName`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := match.NormalizeName(args[0]), match.NormalizeName(args[1])

			return g.printValue(cmd.OutOrStdout(), similarityResult{
				Source:      args[0],
				Target:      args[1],
				Similarity:  match.RoundConfidence(match.StringSimilarity(args[0], args[1])),
				Algorithm:   "levenshtein + fuzzy",
				Levenshtein: match.Levenshtein(a, b),
				Normalized:  [2]string{a, b},
			})
		},
	})
}
