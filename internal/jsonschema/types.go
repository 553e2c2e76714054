package jsonschema

import "vmtemplate-generator/internal/schema"

// componentTypes maps form-builder component types onto data types.
var componentTypes = map[string]schema.DataType{
	"TextInput":   schema.DataTypeString,
	"TextArea":    schema.DataTypeString,
	"StringInput": schema.DataTypeString,

	"RadioInput":  schema.DataTypeString,
	"CheckBox":    schema.DataTypeBoolean,
	"Dropdown":    schema.DataTypeString,
	"QuestionScr": schema.DataTypeString,

	"DateInput":     schema.DataTypeDate,
	"DateTimeInput": schema.DataTypeDateTime,

	"NumberInput": schema.DataTypeNumber,

	"FileUploadComponent": schema.DataTypeString,

	"AddressInput":  schema.DataTypeObject,
	"PersonalData":  schema.DataTypeObject,
	"SnilsInput":    schema.DataTypeString,
	"PassportInput": schema.DataTypeObject,

	"RepeatableFields":       schema.DataTypeArray,
	"CycledApplicantAnswers": schema.DataTypeArray,
}

// excludedComponentTypes are screen markers and service components that never
// carry user data.
var excludedComponentTypes = map[string]bool{
	"QUESTION":    true,
	"INFO":        true,
	"UNIQUE":      true,
	"CUSTOM":      true,
	"QuestionScr": true,
}

func componentDataType(componentType string) schema.DataType {
	if dt, ok := componentTypes[componentType]; ok {
		return dt
	}

	return schema.DataTypeString
}

// fieldDataType resolves a descriptor "type" member. Type lists such as
// ["string", "null"] use their first non-null entry.
func fieldDataType(v *Value) schema.DataType {
	if v == nil {
		return schema.DataTypeString
	}

	if v.Kind == KindArray {
		for _, item := range v.Items {
			if item.Kind == KindString && item.Str != "null" {
				return schema.ParseDataType(item.Str)
			}
		}

		return schema.DataTypeString
	}

	if v.Kind != KindString {
		return schema.DataTypeString
	}

	return schema.ParseDataType(v.Str)
}
