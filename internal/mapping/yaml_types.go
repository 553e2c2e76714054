package mapping

import (
	"vmtemplate-generator/internal/schema"
)

// CurrentVersion is the mapping file format version written by this package.
const CurrentVersion = "1"

// MappingFile is the root of a YAML mapping file.
type MappingFile struct {
	Version string `yaml:"version"`
	// RootElement records the XSD root the mappings were made against.
	RootElement string         `yaml:"root_element,omitempty"`
	Mappings    []FieldMapping `yaml:"mappings"`
	// Ignore lists JSON field ids that are intentionally left unmapped.
	Ignore []string `yaml:"ignore,omitempty"`
}

// FieldMapping pins one JSON field onto one XML element.
type FieldMapping struct {
	Field       string          `yaml:"field"`
	Label       string          `yaml:"label,omitempty"`
	Element     string          `yaml:"element"`
	ElementPath string          `yaml:"element_path,omitempty"`
	Variable    string          `yaml:"variable,omitempty"`
	Path        string          `yaml:"path,omitempty"`
	Confidence  *float64        `yaml:"confidence,omitempty"`
	Auto        bool            `yaml:"auto,omitempty"`
	Type        schema.DataType `yaml:"type,omitempty"`
}

// FromSuggestions builds a mapping file from accepted suggestions.
func FromSuggestions(rootElement string, suggestions []schema.MappingSuggestion) *MappingFile {
	mf := &MappingFile{
		Version:     CurrentVersion,
		RootElement: rootElement,
		Mappings:    make([]FieldMapping, 0, len(suggestions)),
	}

	for _, s := range suggestions {
		confidence := s.ConfidenceScore

		mf.Mappings = append(mf.Mappings, FieldMapping{
			Field:       s.JsonFieldID,
			Label:       s.JsonFieldLabel,
			Element:     s.XmlElementName,
			ElementPath: s.XmlElementPath,
			Variable:    s.VariableName,
			Path:        s.JsonFieldPath,
			Confidence:  &confidence,
			Auto:        s.IsAutoMapped,
			Type:        s.DataType,
		})
	}

	return mf
}

// Suggestions converts the file back into mapping suggestions. Entries
// without a confidence are treated as certain.
func (mf *MappingFile) Suggestions() []schema.MappingSuggestion {
	out := make([]schema.MappingSuggestion, 0, len(mf.Mappings))

	for _, m := range mf.Mappings {
		confidence := 1.0
		if m.Confidence != nil {
			confidence = *m.Confidence
		}

		dataType := m.Type
		if dataType == "" {
			dataType = schema.DataTypeString
		}

		out = append(out, schema.MappingSuggestion{
			JsonFieldID:     m.Field,
			JsonFieldPath:   m.Path,
			JsonFieldLabel:  m.Label,
			XmlElementName:  m.Element,
			XmlElementPath:  m.ElementPath,
			VariableName:    m.Variable,
			ConfidenceScore: schema.ClampConfidence(confidence),
			IsAutoMapped:    m.Auto,
			DataType:        dataType,
		})
	}

	return out
}
