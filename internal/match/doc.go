// Package match provides name normalization, string similarity ratios, a
// semantic keyword table, type compatibility scoring, and candidate ranking
// for JSON field to XML element matching.
//
// Key functions:
//   - NormalizeName: normalizes identifiers and labels for comparison
//   - Ratio, TokenSortRatio, PartialRatio: similarity ratios in [0, 1]
//   - ScoreFieldElement: weighted score of one field against one element
//   - RankCandidates: ranks elements for a field
//   - StringSimilarity: general-purpose similarity of two strings
package match
