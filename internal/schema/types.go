package schema

import "strings"

// DataType is the normalized type of a JSON form field.
type DataType string

const (
	DataTypeString   DataType = "string"
	DataTypeNumber   DataType = "number"
	DataTypeInteger  DataType = "integer"
	DataTypeBoolean  DataType = "boolean"
	DataTypeDate     DataType = "date"
	DataTypeDateTime DataType = "datetime"
	DataTypeArray    DataType = "array"
	DataTypeObject   DataType = "object"
)

// RequestPrefix is the template reference every JSON field path is rooted at.
const RequestPrefix = "$request"

// JsonField is one field discovered in a JSON form schema.
type JsonField struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Type        DataType `json:"type" yaml:"type"`
	Required    bool     `json:"required" yaml:"required"`
	Path        string   `json:"path" yaml:"path"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasLabel reports whether the field carries a human-readable label.
func (f JsonField) HasLabel() bool {
	return f.Label != ""
}

// ParsedJsonSchema is the canonical result of parsing a JSON form schema.
// Fields keep discovery order.
type ParsedJsonSchema struct {
	Fields        []JsonField `json:"fields" yaml:"fields"`
	TotalFields   int         `json:"total_fields" yaml:"total_fields"`
	SchemaVersion string      `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	Format        string      `json:"format,omitempty" yaml:"format,omitempty"`
}

// Field returns the first field with the given id.
func (s *ParsedJsonSchema) Field(id string) (JsonField, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}

	return JsonField{}, false
}

// XmlElement is one element declaration discovered in an XSD schema.
type XmlElement struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
	MinOccurs   int    `json:"min_occurs" yaml:"min_occurs"`
	MaxOccurs   *int   `json:"max_occurs" yaml:"max_occurs"`
	Parent      string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsTopLevel reports whether the element has no containing element.
func (e XmlElement) IsTopLevel() bool {
	return e.Parent == ""
}

// HierarchyRoot is the key top-level elements are grouped under by Hierarchy.
const HierarchyRoot = "root"

// ParsedXsdSchema is the canonical result of parsing an XSD schema.
// Elements may repeat by name; see the xsd package.
type ParsedXsdSchema struct {
	Elements      []XmlElement `json:"elements" yaml:"elements"`
	TotalElements int          `json:"total_elements" yaml:"total_elements"`
	RootElement   string       `json:"root_element,omitempty" yaml:"root_element,omitempty"`
	Namespace     string       `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TopLevel returns the parentless elements in declaration order.
func (s *ParsedXsdSchema) TopLevel() []XmlElement {
	var out []XmlElement

	for _, e := range s.Elements {
		if e.IsTopLevel() {
			out = append(out, e)
		}
	}

	return out
}

// Hierarchy groups elements by parent name. Parentless elements are listed
// under HierarchyRoot. Order within each group follows declaration order.
func (s *ParsedXsdSchema) Hierarchy() map[string][]XmlElement {
	h := make(map[string][]XmlElement)

	for _, e := range s.Elements {
		parent := e.Parent
		if parent == "" {
			parent = HierarchyRoot
		}

		h[parent] = append(h[parent], e)
	}

	return h
}

// Element returns the first element with the given name, case-sensitively.
func (s *ParsedXsdSchema) Element(name string) (XmlElement, bool) {
	for _, e := range s.Elements {
		if e.Name == name {
			return e, true
		}
	}

	return XmlElement{}, false
}

// MappingSuggestion is an accepted correspondence between a JSON field and an
// XML element.
type MappingSuggestion struct {
	JsonFieldID     string   `json:"json_field_id" yaml:"json_field_id"`
	JsonFieldPath   string   `json:"json_field_path" yaml:"json_field_path"`
	JsonFieldLabel  string   `json:"json_field_label,omitempty" yaml:"json_field_label,omitempty"`
	XmlElementName  string   `json:"xml_element_name" yaml:"xml_element_name"`
	XmlElementPath  string   `json:"xml_element_path,omitempty" yaml:"xml_element_path,omitempty"`
	VariableName    string   `json:"variable_name" yaml:"variable_name"`
	ConfidenceScore float64  `json:"confidence_score" yaml:"confidence_score"`
	IsAutoMapped    bool     `json:"is_auto_mapped" yaml:"is_auto_mapped"`
	DataType        DataType `json:"data_type,omitempty" yaml:"data_type,omitempty"`
}

// ClampConfidence limits a score to [0, 1].
func ClampConfidence(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

// ParseDataType maps a loose type name onto a DataType. Unknown names yield
// DataTypeString.
func ParseDataType(s string) DataType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text":
		return DataTypeString
	case "number":
		return DataTypeNumber
	case "integer", "int":
		return DataTypeInteger
	case "boolean", "bool":
		return DataTypeBoolean
	case "date":
		return DataTypeDate
	case "datetime":
		return DataTypeDateTime
	case "array":
		return DataTypeArray
	case "object":
		return DataTypeObject
	default:
		return DataTypeString
	}
}
