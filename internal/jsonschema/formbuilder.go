package jsonschema

import "vmtemplate-generator/internal/schema"

// maxSearchDepth bounds the deep component search.
const maxSearchDepth = 10

// extractFormBuilderFields collects components from every top-level array.
// An array item is a component when it is an object with "id" and "type".
// Later duplicates replace earlier ones but keep the first position.
func extractFormBuilderFields(root *Value, prefix string) []schema.JsonField {
	var order []string

	components := make(map[string]*Value)

	for _, m := range root.Members {
		if m.Value.Kind != KindArray {
			continue
		}

		for _, item := range m.Value.Items {
			if item.Kind != KindObject || !item.Has("id") || !item.Has("type") {
				continue
			}

			id := item.StringField("id")
			if id == "" {
				continue
			}

			if _, seen := components[id]; !seen {
				order = append(order, id)
			}

			components[id] = item
		}
	}

	fields := make([]schema.JsonField, 0, len(order))

	for _, id := range order {
		c := components[id]

		required := c.BoolField("required")
		if attrs, ok := c.Get("attrs"); ok && attrs.Kind == KindObject {
			required = required || attrs.BoolField("required")
		}

		fields = append(fields, componentField(c, id, prefix, required))
	}

	if len(fields) == 0 {
		return deepSearchComponents(root, prefix)
	}

	return fields
}

type searchItem struct {
	value *Value
	depth int
}

// deepSearchComponents walks the whole document looking for component-like
// objects. It visits nodes in depth-first pre-order using an explicit stack,
// never descends into a key named "screens", and stops at maxSearchDepth.
func deepSearchComponents(root *Value, prefix string) []schema.JsonField {
	var fields []schema.JsonField

	stack := []searchItem{{value: root}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.depth > maxSearchDepth {
			continue
		}

		v := item.value

		switch v.Kind {
		case KindObject:
			if f, ok := searchComponent(v, prefix); ok {
				fields = append(fields, f)
			}

			for i := len(v.Members) - 1; i >= 0; i-- {
				if v.Members[i].Key == "screens" {
					continue
				}

				stack = append(stack, searchItem{value: v.Members[i].Value, depth: item.depth + 1})
			}

		case KindArray:
			for i := len(v.Items) - 1; i >= 0; i-- {
				stack = append(stack, searchItem{value: v.Items[i], depth: item.depth + 1})
			}

		default:
		}
	}

	return fields
}

func searchComponent(v *Value, prefix string) (schema.JsonField, bool) {
	if !v.Has("id") || !v.Has("type") {
		return schema.JsonField{}, false
	}

	componentType, _ := v.Get("type")
	if componentType.Kind == KindString && excludedComponentTypes[componentType.Str] {
		return schema.JsonField{}, false
	}

	id := v.StringField("id")
	if id == "" {
		return schema.JsonField{}, false
	}

	return componentField(v, id, prefix, v.BoolField("required")), true
}

func componentField(c *Value, id, prefix string, required bool) schema.JsonField {
	label := c.StringField("label")
	if label == "" {
		label = c.StringField("name")
	}

	dt := schema.DataTypeString
	if t, ok := c.Get("type"); ok && t.Kind == KindString {
		dt = componentDataType(t.Str)
	}

	return schema.JsonField{
		ID:          id,
		Label:       label,
		Type:        dt,
		Required:    required,
		Path:        prefix + "." + id,
		Description: c.StringField("description"),
	}
}
