package plan

import (
	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/match"
	"vmtemplate-generator/internal/schema"
)

// Config holds configuration for auto-mapping.
type Config struct {
	// MinConfidence is the minimum score for accepting a match.
	MinConfidence float64
	// AutoMapThreshold is the score below which an accepted match is flagged
	// for review.
	AutoMapThreshold float64
	// MaxCandidates is the maximum number of candidates kept for unmapped fields.
	MaxCandidates int
	// AmbiguityThreshold is the score gap between the two best distinct
	// elements below which a field is reported as ambiguous.
	AmbiguityThreshold float64
}

// DefaultConfig returns the default mapping configuration.
func DefaultConfig() Config {
	return Config{
		MinConfidence:      0.5,
		AutoMapThreshold:   0.7,
		MaxCandidates:      3,
		AmbiguityThreshold: match.DefaultAmbiguityThreshold,
	}
}

// Result is the output of AutoMap.
type Result struct {
	// Mappings holds one accepted mapping per mapped field, in field order.
	Mappings []schema.MappingSuggestion `json:"mappings" yaml:"mappings"`
	// UnmappedJSON lists the ids of fields without a mapping, in field order.
	UnmappedJSON []string `json:"unmapped_json" yaml:"unmapped_json"`
	// UnmappedXML lists parentless elements no mapping selected.
	UnmappedXML []string `json:"unmapped_xml" yaml:"unmapped_xml"`
	// Unmapped explains each unmapped field.
	Unmapped []UnmappedField `json:"unmapped,omitempty" yaml:"unmapped,omitempty"`
	// Diagnostics contains warnings about the mapping quality.
	Diagnostics diagnostic.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// UnmappedField is a JSON field that could not be mapped.
type UnmappedField struct {
	FieldID    string              `json:"field_id" yaml:"field_id"`
	Candidates match.CandidateList `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Reason     string              `json:"reason" yaml:"reason"`
}

// TotalMapped returns the number of accepted mappings.
func (r *Result) TotalMapped() int {
	return len(r.Mappings)
}

// Diagnostic codes.
const (
	CodeLowConfidence = "low_confidence"
	CodeUnmappedField = "unmapped_field"
	CodeTypeMismatch  = "type_mismatch"
	CodeAmbiguous     = "ambiguous_match"
)
