package jsonschema

// SchemaFormat is the document shape a JSON form schema was recognised as.
type SchemaFormat int

const (
	// FormatUnknown matches no known shape and parses to zero fields.
	FormatUnknown SchemaFormat = iota
	// FormatFormBuilder is a form-builder export with screens and components.
	FormatFormBuilder
	// FormatFieldList carries an explicit "fields" list of descriptors.
	FormatFieldList
	// FormatProperties is a JSON Schema style "properties" map.
	FormatProperties
)

// String returns the format name.
func (f SchemaFormat) String() string {
	switch f {
	case FormatFormBuilder:
		return "form-builder"
	case FormatFieldList:
		return "fields"
	case FormatProperties:
		return "properties"
	default:
		return "unknown"
	}
}

// DetectFormat decides the shape of a document root once, honouring the
// precedence form-builder > fields > properties.
func DetectFormat(root *Value) SchemaFormat {
	switch {
	case root.Has("screens") || root.Has("service"):
		return FormatFormBuilder
	case root.Has("fields"):
		return FormatFieldList
	case root.Has("properties"):
		return FormatProperties
	default:
		return FormatUnknown
	}
}
