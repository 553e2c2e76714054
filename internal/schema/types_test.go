package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"string", DataTypeString},
		{"TEXT", DataTypeString},
		{"Int", DataTypeInteger},
		{"integer", DataTypeInteger},
		{"bool", DataTypeBoolean},
		{"number", DataTypeNumber},
		{"date", DataTypeDate},
		{"DateTime", DataTypeDateTime},
		{"array", DataTypeArray},
		{"object", DataTypeObject},
		{"uuid", DataTypeString},
		{"", DataTypeString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDataType(tt.in))
		})
	}
}

func TestParsedXsdSchema_Hierarchy(t *testing.T) {
	s := ParsedXsdSchema{
		Elements: []XmlElement{
			{Name: "Person"},
			{Name: "FamilyName", Parent: "Person"},
			{Name: "GivenName", Parent: "Person"},
			{Name: "Note"},
		},
	}

	h := s.Hierarchy()

	require.Len(t, h[HierarchyRoot], 2)
	assert.Equal(t, "Person", h[HierarchyRoot][0].Name)
	assert.Equal(t, "Note", h[HierarchyRoot][1].Name)

	require.Len(t, h["Person"], 2)
	assert.Equal(t, "FamilyName", h["Person"][0].Name)
	assert.Len(t, s.TopLevel(), 2)
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, ClampConfidence(-0.3))
	assert.Equal(t, 1.0, ClampConfidence(1.7))
	assert.Equal(t, 0.42, ClampConfidence(0.42))
}

func TestFileType(t *testing.T) {
	assert.Equal(t, "JSON_SCHEMA", FileTypeJSONSchema.String())
	assert.Equal(t, "TEST_DATA", FileTypeTestData.String())
	assert.Equal(t, "FileType(9)", FileType(9).String())
}
