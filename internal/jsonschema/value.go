package jsonschema

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/ohler55/ojg/oj"

	"vmtemplate-generator/internal/schema"
)

// Kind is the JSON type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value *Value
}

// Value is a generic JSON tree node that keeps object keys in document order.
type Value struct {
	Kind    Kind
	Str     string // string content, or the number literal
	Bool    bool
	Items   []*Value
	Members []Member
	Raw     []byte // source text of arrays and objects
}

// Get returns the value stored under key in an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}

	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}

	return nil, false
}

// Has reports whether an object carries key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Text renders a scalar as text: strings verbatim, numbers as written in the
// source, booleans as true/false. Null yields "" and containers their JSON text.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}

	switch v.Kind {
	case KindString, KindNumber:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}

		return "false"
	case KindArray, KindObject:
		return string(v.Raw)
	default:
		return ""
	}
}

// Truthy follows the usual dynamic-language truthiness: false, null, "", 0 and
// empty containers are false.
func (v *Value) Truthy() bool {
	if v == nil {
		return false
	}

	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindString:
		return v.Str != ""
	case KindNumber:
		for _, r := range v.Str {
			if r >= '1' && r <= '9' {
				return true
			}

			if r == 'e' || r == 'E' {
				break
			}
		}

		return false
	case KindArray:
		return len(v.Items) > 0
	case KindObject:
		return len(v.Members) > 0
	default:
		return false
	}
}

// StringField returns the text of a truthy scalar member, or "".
func (v *Value) StringField(key string) string {
	child, ok := v.Get(key)
	if !ok || !child.Truthy() {
		return ""
	}

	return child.Text()
}

// BoolField returns the value of a boolean member; anything else is false.
func (v *Value) BoolField(key string) bool {
	child, ok := v.Get(key)
	return ok && child.Kind == KindBool && child.Bool
}

func (v *Value) set(key string, child *Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = child
			return
		}
	}

	v.Members = append(v.Members, Member{Key: key, Value: child})
}

// Decode parses JSON text into a Value. Syntax errors wrap
// schema.ErrInvalidFormat.
func Decode(data []byte) (*Value, error) {
	// jsonparser is lenient about trailing garbage, so strictness comes from oj.
	if _, err := oj.Parse(data); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", schema.ErrInvalidFormat, err)
	}

	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", schema.ErrInvalidFormat, err)
	}

	return build(raw, dt)
}

func build(data []byte, dt jsonparser.ValueType) (*Value, error) {
	switch dt {
	case jsonparser.Object:
		v := &Value{Kind: KindObject, Raw: data}

		err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return fmt.Errorf("decoding key %q: %w", key, err)
			}

			child, err := build(value, vt)
			if err != nil {
				return err
			}

			v.set(k, child)

			return nil
		})
		if err != nil {
			return nil, err
		}

		return v, nil

	case jsonparser.Array:
		v := &Value{Kind: KindArray, Raw: data}

		var inner error

		_, err := jsonparser.ArrayEach(data, func(value []byte, vt jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}

			if err != nil {
				inner = err
				return
			}

			child, err := build(value, vt)
			if err != nil {
				inner = err
				return
			}

			v.Items = append(v.Items, child)
		})
		if err != nil {
			return nil, err
		}

		if inner != nil {
			return nil, inner
		}

		return v, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("decoding string: %w", err)
		}

		return &Value{Kind: KindString, Str: s}, nil

	case jsonparser.Number:
		return &Value{Kind: KindNumber, Str: string(data)}, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, fmt.Errorf("decoding boolean: %w", err)
		}

		return &Value{Kind: KindBool, Bool: b}, nil

	case jsonparser.Null:
		return &Value{Kind: KindNull}, nil

	default:
		return nil, fmt.Errorf("unexpected JSON value type %s", dt)
	}
}
