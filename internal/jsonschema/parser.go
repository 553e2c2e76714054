package jsonschema

import (
	"errors"
	"fmt"

	"vmtemplate-generator/internal/schema"
)

// Parse parses JSON form-schema text into the canonical field list.
// Malformed text yields an error wrapping schema.ErrInvalidFormat.
func Parse(text string) (*schema.ParsedJsonSchema, error) {
	root, err := Decode([]byte(text))
	if err != nil {
		return nil, err
	}

	if root.Kind != KindObject {
		return nil, fmt.Errorf("%w: schema root must be a JSON object", schema.ErrInvalidFormat)
	}

	format := DetectFormat(root)

	fields, err := ExtractFields(root, format, schema.RequestPrefix)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON schema: %w", err)
	}

	parsed := &schema.ParsedJsonSchema{
		Fields:      fields,
		TotalFields: len(fields),
		Format:      format.String(),
	}

	if version, ok := root.Get("version"); ok && version.Kind != KindNull {
		parsed.SchemaVersion = version.Text()
	}

	return parsed, nil
}

// ExtractFields dispatches on the detected format.
func ExtractFields(root *Value, format SchemaFormat, prefix string) ([]schema.JsonField, error) {
	switch format {
	case FormatFormBuilder:
		return extractFormBuilderFields(root, prefix), nil
	case FormatFieldList:
		return extractFieldList(root, prefix), nil
	case FormatProperties:
		return extractProperties(root, prefix), nil
	case FormatUnknown:
		return nil, nil
	default:
		return nil, fmt.Errorf("unhandled schema format %d", format)
	}
}

func extractFieldList(root *Value, prefix string) []schema.JsonField {
	list, _ := root.Get("fields")
	if list == nil || list.Kind != KindArray {
		return nil
	}

	var fields []schema.JsonField

	for _, item := range list.Items {
		if item.Kind != KindObject {
			continue
		}

		id := item.StringField("id")
		if id == "" {
			id = item.StringField("name")
		}

		if id == "" {
			continue
		}

		label := item.StringField("label")
		if label == "" {
			label = item.StringField("title")
		}

		typ, _ := item.Get("type")

		fields = append(fields, schema.JsonField{
			ID:          id,
			Label:       label,
			Type:        fieldDataType(typ),
			Required:    item.BoolField("required"),
			Path:        prefix + "." + id,
			Description: item.StringField("description"),
		})
	}

	return fields
}

// extractProperties reads a JSON Schema "properties" map. The enclosing
// schema's "required" list is not consulted, so Required is always false.
func extractProperties(root *Value, prefix string) []schema.JsonField {
	props, _ := root.Get("properties")
	if props == nil || props.Kind != KindObject {
		return nil
	}

	fields := make([]schema.JsonField, 0, len(props.Members))

	for _, m := range props.Members {
		var typ *Value
		if m.Value.Kind == KindObject {
			typ, _ = m.Value.Get("type")
		}

		fields = append(fields, schema.JsonField{
			ID:          m.Key,
			Label:       m.Value.StringField("title"),
			Type:        fieldDataType(typ),
			Path:        prefix + "." + m.Key,
			Description: m.Value.StringField("description"),
		})
	}

	return fields
}

// Shape errors reported by CheckShape.
var (
	ErrNotObject    = errors.New("schema must be a JSON object")
	ErrNoFieldsKeys = errors.New("schema must contain 'fields', 'properties', 'screens' or 'service'")
)

// CheckShape verifies that text is a JSON object in one of the recognised
// formats. Parse itself accepts unknown shapes and returns no fields.
func CheckShape(text string) error {
	root, err := Decode([]byte(text))
	if err != nil {
		return err
	}

	if root.Kind != KindObject {
		return ErrNotObject
	}

	if DetectFormat(root) == FormatUnknown {
		return ErrNoFieldsKeys
	}

	return nil
}
