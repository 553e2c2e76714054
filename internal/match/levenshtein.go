package match

import (
	"github.com/agext/levenshtein"
)

// ratioParams weighs a substitution as a deletion plus an insertion, so that
// Similarity yields 1 - distance/(len(a)+len(b)).
var ratioParams = levenshtein.NewParams().SubCost(2)

// Levenshtein computes the Levenshtein distance (edit distance) between two
// strings, counted in runes.
func Levenshtein(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// Ratio computes the indel similarity of two strings in [0, 1]:
// 1 - d/(len(a)+len(b)), where d is the edit distance with substitutions
// costing 2. Two empty strings are identical.
func Ratio(a, b string) float64 {
	return levenshtein.Similarity(a, b, ratioParams)
}
