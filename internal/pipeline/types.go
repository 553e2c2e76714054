package pipeline

import (
	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/gen"
	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/plan"
	"vmtemplate-generator/internal/schema"
)

// Request holds the inputs of one run.
type Request struct {
	JSONSchema string
	XSDSchema  string
	// TestData is the decoded sample instance used for preview; nil skips it.
	TestData any
	// Mappings replaces auto-mapping with accepted mappings when set.
	Mappings *mapping.MappingFile
}

// Options controls a run.
type Options struct {
	Mapper          plan.Config
	Generator       gen.Config
	IncludePreview  bool
	ValidatePreview bool
}

// DefaultOptions returns the default run options.
func DefaultOptions() Options {
	return Options{
		Mapper:    plan.DefaultConfig(),
		Generator: gen.DefaultConfig(),
	}
}

// Validation is the outcome of a group of checks.
type Validation struct {
	IsValid  bool                    `json:"is_valid" yaml:"is_valid"`
	Errors   []diagnostic.Diagnostic `json:"errors" yaml:"errors"`
	Warnings []diagnostic.Diagnostic `json:"warnings" yaml:"warnings"`
}

func newValidation(diags diagnostic.Diagnostics) *Validation {
	v := &Validation{
		IsValid:  diags.IsValid(),
		Errors:   diags.Errors,
		Warnings: diags.Warnings,
	}

	if v.Errors == nil {
		v.Errors = []diagnostic.Diagnostic{}
	}

	if v.Warnings == nil {
		v.Warnings = []diagnostic.Diagnostic{}
	}

	return v
}

// Result is the outcome of a run. A failed run carries Error and whatever
// stages completed before the failure.
type Result struct {
	Success          bool                       `json:"success" yaml:"success"`
	RunID            string                     `json:"run_id" yaml:"run_id"`
	ParsedJSON       *schema.ParsedJsonSchema   `json:"parsed_json,omitempty" yaml:"parsed_json,omitempty"`
	ParsedXSD        *schema.ParsedXsdSchema    `json:"parsed_xsd,omitempty" yaml:"parsed_xsd,omitempty"`
	Mappings         []schema.MappingSuggestion `json:"mappings" yaml:"mappings"`
	UnmappedJSON     []string                   `json:"unmapped_json" yaml:"unmapped_json"`
	UnmappedXML      []string                   `json:"unmapped_xml" yaml:"unmapped_xml"`
	Template         string                     `json:"template,omitempty" yaml:"template,omitempty"`
	LineCount        int                        `json:"line_count,omitempty" yaml:"line_count,omitempty"`
	PreviewOutput    *string                    `json:"preview_output,omitempty" yaml:"preview_output,omitempty"`
	Validation       *Validation                `json:"validation,omitempty" yaml:"validation,omitempty"`
	OutputValidation *Validation                `json:"output_validation,omitempty" yaml:"output_validation,omitempty"`
	Error            string                     `json:"error,omitempty" yaml:"error,omitempty"`
}
