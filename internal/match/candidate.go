package match

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"vmtemplate-generator/internal/schema"
)

// Scores for identifier equality short-circuits.
const (
	ExactMatchScore      = 1.0
	NormalizedMatchScore = 0.95
)

// SemanticFloor is the lowest score of a label-weighted pair matched by the
// semantic keyword table. The weighted score fills the remaining range above it.
const SemanticFloor = 0.7

// minLabelLength is the label length, in characters, above which the
// label-driven weights apply.
const minLabelLength = 3

// Score is the breakdown of one field/element comparison.
type Score struct {
	Total float64 `json:"total" yaml:"total"`

	Exact      bool `json:"exact,omitempty" yaml:"exact,omitempty"`
	Normalized bool `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	// LabelWeighted reports whether the label-driven weights were used.
	LabelWeighted bool `json:"label_weighted,omitempty" yaml:"label_weighted,omitempty"`
	// Boosted reports whether the semantic floor was applied.
	Boosted bool `json:"boosted,omitempty" yaml:"boosted,omitempty"`

	Levenshtein float64 `json:"levenshtein" yaml:"levenshtein"`
	TokenSort   float64 `json:"token_sort" yaml:"token_sort"`
	Partial     float64 `json:"partial" yaml:"partial"`
	LabelVsName float64 `json:"label_vs_name" yaml:"label_vs_name"`
	LabelVsDesc float64 `json:"label_vs_desc" yaml:"label_vs_desc"`
	Semantic    float64 `json:"semantic" yaml:"semantic"`
}

// ScoreFieldElement scores how well an XML element matches a JSON field.
//
// Identifiers equal ignoring case score ExactMatchScore and identifiers equal
// after NormalizeName score NormalizedMatchScore. Otherwise the score is a
// weighted sum of id/name ratios, label comparisons against the element name
// and description, and the semantic keyword score. Labels longer than three
// characters shift the weight onto the label comparisons. With those weights a
// semantic keyword hit lifts the score w to SemanticFloor + (1-SemanticFloor)*w.
// Short labels keep the plain weighted sum.
func ScoreFieldElement(field schema.JsonField, elem schema.XmlElement) Score {
	if strings.ToLower(field.ID) == strings.ToLower(elem.Name) {
		return Score{Total: ExactMatchScore, Exact: true}
	}

	id := NormalizeName(field.ID)
	name := NormalizeName(elem.Name)

	if id == name {
		return Score{Total: NormalizedMatchScore, Normalized: true}
	}

	s := Score{
		Levenshtein: Ratio(id, name),
		TokenSort:   TokenSortRatio(id, name),
		Partial:     PartialRatio(id, name),
	}

	if field.HasLabel() {
		label := NormalizeName(field.Label)
		s.LabelVsName = bestRatio(label, name)

		if elem.Description != "" {
			s.LabelVsDesc = bestRatio(label, NormalizeName(elem.Description))
		}
	}

	s.Semantic = SemanticScore(field.Label, elem.Name, elem.Description)

	if utf8.RuneCountInString(field.Label) > minLabelLength {
		s.LabelWeighted = true
		s.Total = 0.40*s.LabelVsName +
			0.25*s.LabelVsDesc +
			0.15*s.Semantic +
			0.10*s.TokenSort +
			0.05*s.Partial +
			0.05*s.Levenshtein
	} else {
		s.Total = 0.30*s.Levenshtein +
			0.30*s.TokenSort +
			0.20*s.Partial +
			0.15*s.LabelVsName +
			0.05*s.Semantic
	}

	if s.LabelWeighted && s.Semantic > 0 {
		s.Boosted = true
		s.Total = SemanticFloor + (1-SemanticFloor)*s.Total
	}

	s.Total = math.Min(s.Total, 1.0)

	return s
}

func bestRatio(a, b string) float64 {
	return max(Ratio(a, b), TokenSortRatio(a, b), PartialRatio(a, b))
}

// StringSimilarity is the mean of the edit-distance ratio and the token-sort
// ratio of the normalized strings.
func StringSimilarity(a, b string) float64 {
	na, nb := NormalizeName(a), NormalizeName(b)

	return (Ratio(na, nb) + TokenSortRatio(na, nb)) / 2
}

// RoundConfidence rounds a score to two decimals and clamps it to [0, 1].
func RoundConfidence(score float64) float64 {
	return schema.ClampConfidence(math.Round(score*100) / 100)
}

// Candidate represents a potential mapping from a JSON field to an XML element.
type Candidate struct {
	Element schema.XmlElement `json:"element" yaml:"element"`
	// Index is the element's position in the list it was ranked from.
	Index int   `json:"index" yaml:"index"`
	Score Score `json:"score" yaml:"score"`

	TypeCompat TypeCompatibilityResult `json:"type_compat" yaml:"type_compat"`
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every element against field and returns candidates
// sorted by score (descending). Equal scores keep element order, so the first
// candidate is the earliest best element.
func RankCandidates(field schema.JsonField, elements []schema.XmlElement) CandidateList {
	candidates := make(CandidateList, 0, len(elements))

	for i, elem := range elements {
		candidates = append(candidates, Candidate{
			Element:    elem,
			Index:      i,
			Score:      ScoreFieldElement(field, elem),
			TypeCompat: ScoreTypeCompatibility(field.Type, elem.Type),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by element position.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score.Total != c[j].Score.Total {
		return c[i].Score.Total > c[j].Score.Total
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// RunnerUp returns the best candidate naming a different element than the
// best one, or nil. Repeated declarations of one element are not rivals.
func (c CandidateList) RunnerUp() *Candidate {
	best := c.Best()
	if best == nil {
		return nil
	}

	for i := 1; i < len(c); i++ {
		if c[i].Element.Name != best.Element.Name {
			return &c[i]
		}
	}

	return nil
}

// IsAmbiguous returns true if the best candidate and the runner-up are within
// the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	second := c.RunnerUp()
	if second == nil {
		return false
	}

	return c[0].Score.Total-second.Score.Total < threshold
}

// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
const DefaultAmbiguityThreshold = 0.05
