package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/schema"
)

func testSchemas() (*schema.ParsedJsonSchema, *schema.ParsedXsdSchema) {
	form := &schema.ParsedJsonSchema{Fields: []schema.JsonField{
		{ID: "lastName"},
		{ID: "first_name"},
		{ID: "comment"},
	}}

	xsd := &schema.ParsedXsdSchema{
		RootElement: "Person",
		Elements: []schema.XmlElement{
			{Name: "Person", Path: "Person"},
			{Name: "FamilyName", Path: "Person/FamilyName", Parent: "Person"},
			{Name: "FirstName", Path: "Person/FirstName", Parent: "Person"},
			{Name: "FamilyName", Path: "FamilyName"},
			{Name: "FirstName", Path: "FirstName"},
		},
	}

	return form, xsd
}

func codes(list []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range list {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Fixture(t *testing.T) {
	mf, err := LoadFile("testdata/mappings.yaml")
	require.NoError(t, err)

	form, xsd := testSchemas()
	res := Validate(mf, form, xsd)

	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func confidence(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mf       *MappingFile
		errors   []string
		warnings []string
	}{
		{
			name: "unknown field and element",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "nope", Element: "Missing", Variable: "nope"},
			}},
			errors: []string{"json_field_not_found", "xml_element_not_found"},
		},
		{
			name: "duplicate field",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "lastName", Element: "FamilyName", Variable: "lastName"},
				{Field: "lastName", Element: "FirstName", Variable: "lastName"},
			}},
			errors: []string{"duplicate_field"},
		},
		{
			name: "shared variable",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "lastName", Element: "FamilyName", Variable: "name"},
				{Field: "first_name", Element: "FirstName", Variable: "name"},
			}},
			warnings: []string{"duplicate_variable"},
		},
		{
			name: "invalid variable",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "lastName", Element: "FamilyName", Variable: "last.name"},
			}},
			errors: []string{"invalid_variable"},
		},
		{
			name: "missing field and element",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Element: "FamilyName"},
				{Field: "lastName", Variable: "lastName"},
			}},
			errors: []string{"missing_field", "missing_element"},
		},
		{
			name: "confidence out of range",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "lastName", Element: "FamilyName", Variable: "lastName", Confidence: confidence(1.5)},
			}},
			errors: []string{"invalid_confidence"},
		},
		{
			name: "element path mismatch",
			mf: &MappingFile{Version: "1", Mappings: []FieldMapping{
				{Field: "lastName", Element: "FamilyName", ElementPath: "Other/FamilyName", Variable: "lastName"},
			}},
			warnings: []string{"element_path_mismatch"},
		},
		{
			name: "ignore list",
			mf: &MappingFile{
				Version:  "1",
				Mappings: []FieldMapping{{Field: "lastName", Element: "FamilyName", Variable: "lastName"}},
				Ignore:   []string{"lastName", "ghost"},
			},
			warnings: []string{"ignored_field_mapped", "ignored_field_not_found"},
		},
		{
			name:     "version and root",
			mf:       &MappingFile{Version: "2", RootElement: "Application"},
			errors:   []string{"unsupported_version"},
			warnings: []string{"root_element_changed"},
		},
		{
			name:   "nil file",
			errors: []string{"mapping_is_nil"},
		},
	}

	form, xsd := testSchemas()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.mf, form, xsd)

			assert.Equal(t, tt.errors, codes(res.Errors))
			assert.Equal(t, tt.warnings, codes(res.Warnings))
		})
	}
}

func TestValidate_NilSchemasSkipLookups(t *testing.T) {
	mf := &MappingFile{Version: "1", Mappings: []FieldMapping{
		{Field: "anything", Element: "Whatever", Variable: "anything"},
	}}

	res := Validate(mf, nil, nil)
	assert.True(t, res.IsValid())
}
