package match

import (
	"strings"

	"vmtemplate-generator/internal/schema"
)

// TypeCompatibility represents how well a JSON field type fits an XSD type.
type TypeCompatibility int

const (
	// TypeIncompatible means the value cannot be rendered as the element type.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsTransform means the value must be reformatted for the element.
	TypeNeedsTransform
	// TypeConvertible means the value fits when its text happens to be valid.
	TypeConvertible
	// TypeAssignable means every value of the field is a valid element value.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsTransform:
		return VerdictNeedsTransform
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// MarshalText encodes the compatibility as its verdict.
func (c TypeCompatibility) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility `json:"compatibility" yaml:"compatibility"`
	Reason        string            `json:"reason" yaml:"reason"`
	SourceType    string            `json:"source_type" yaml:"source_type"`
	TargetType    string            `json:"target_type" yaml:"target_type"`
}

type xsdFamily int

const (
	familyString xsdFamily = iota
	familyInteger
	familyDecimal
	familyBoolean
	familyDate
	familyDateTime
	familyOther
)

var xsdFamilies = map[string]xsdFamily{
	"string": familyString, "normalizedString": familyString, "token": familyString,
	"anyURI": familyString, "Name": familyString, "NCName": familyString, "language": familyString,

	"integer": familyInteger, "int": familyInteger, "long": familyInteger, "short": familyInteger,
	"byte": familyInteger, "nonNegativeInteger": familyInteger, "positiveInteger": familyInteger,
	"nonPositiveInteger": familyInteger, "negativeInteger": familyInteger,
	"unsignedLong": familyInteger, "unsignedInt": familyInteger, "unsignedShort": familyInteger,
	"unsignedByte": familyInteger,

	"decimal": familyDecimal, "float": familyDecimal, "double": familyDecimal,
	"boolean": familyBoolean,
	"date":     familyDate,
	"dateTime": familyDateTime,

	"time": familyOther, "gYear": familyOther, "base64Binary": familyOther, "hexBinary": familyOther,
}

var typedPairs = map[schema.DataType]map[xsdFamily]TypeCompatibility{
	schema.DataTypeInteger:  {familyInteger: TypeIdentical, familyDecimal: TypeAssignable},
	schema.DataTypeNumber:   {familyDecimal: TypeIdentical, familyInteger: TypeNeedsTransform},
	schema.DataTypeBoolean:  {familyBoolean: TypeIdentical},
	schema.DataTypeDate:     {familyDate: TypeIdentical, familyDateTime: TypeNeedsTransform},
	schema.DataTypeDateTime: {familyDateTime: TypeIdentical, familyDate: TypeNeedsTransform},
}

// ScoreTypeCompatibility determines whether values of a JSON field type can be
// written into an element of the given XSD type. An empty XSD type accepts
// anything; a type outside the XML Schema builtins needs a transform.
func ScoreTypeCompatibility(source schema.DataType, xsdType string) TypeCompatibilityResult {
	res := TypeCompatibilityResult{SourceType: string(source), TargetType: xsdType}

	if xsdType == "" {
		res.Compatibility = TypeAssignable
		res.Reason = "element has no declared type"

		return res
	}

	local := xsdType
	if i := strings.LastIndexByte(local, ':'); i >= 0 {
		local = local[i+1:]
	}

	family, ok := xsdFamilies[local]
	if !ok {
		res.Compatibility = TypeNeedsTransform
		res.Reason = "element uses a schema-defined type"

		return res
	}

	res.Compatibility, res.Reason = compatibility(source, family)

	return res
}

func compatibility(source schema.DataType, target xsdFamily) (TypeCompatibility, string) {
	switch source {
	case schema.DataTypeArray, schema.DataTypeObject:
		return TypeIncompatible, "structured value written into a simple element"
	case schema.DataTypeString:
		if target == familyString {
			return TypeIdentical, "both are strings"
		}

		return TypeNeedsTransform, "string must match the element's lexical form"
	}

	if target == familyString {
		return TypeAssignable, "any value renders as text"
	}

	c, ok := typedPairs[source][target]
	if !ok {
		return TypeIncompatible, "value types do not overlap"
	}

	switch c {
	case TypeIdentical:
		return c, "types are identical"
	case TypeAssignable:
		return c, "every source value is a valid target value"
	default:
		return c, "value must be reformatted"
	}
}
