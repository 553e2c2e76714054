package validate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Person">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="FamilyName" type="xs:string"/>
        <xs:element name="Age" type="xs:int" minOccurs="0"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

const cyrillicNameXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Name">
    <xs:simpleType>
      <xs:restriction base="xs:string">
        <xs:pattern value="\p{IsCyrillic}+"/>
      </xs:restriction>
    </xs:simpleType>
  </xs:element>
</xs:schema>`

func readFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	return string(data)
}

func TestOutput(t *testing.T) {
	tests := []struct {
		name  string
		xml   string
		xsd   string
		valid bool
		code  string
	}{
		{
			name:  "valid",
			xml:   "<Person>\n  <FamilyName>Иванов</FamilyName>\n</Person>",
			xsd:   personXSD,
			valid: true,
		},
		{
			name: "missing required child",
			xml:  "<Person>\n  <Age>3</Age>\n</Person>",
			xsd:  personXSD,
		},
		{
			name: "bad integer",
			xml:  "<Person>\n  <FamilyName>A</FamilyName>\n  <Age>three</Age>\n</Person>",
			xsd:  personXSD,
		},
		{
			name: "malformed xml",
			xml:  "<Person>\n  <FamilyName>\n</Person>",
			xsd:  personXSD,
		},
		{
			name:  "xsd block escape accepts cyrillic",
			xml:   "<Name>Иван</Name>",
			xsd:   cyrillicNameXSD,
			valid: true,
		},
		{
			name: "xsd block escape rejects latin",
			xml:  "<Name>abc123</Name>",
			xsd:  cyrillicNameXSD,
		},
		{
			name: "malformed xsd",
			xml:  "<Person/>",
			xsd:  "<xs:schema",
			code: CodeSchemaSyntax,
		},
		{
			name: "not a schema",
			xml:  "<Person/>",
			xsd:  "<Person/>",
			code: CodeSchemaSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, diags := Output(tt.xml, tt.xsd)

			assert.Equal(t, tt.valid, ok)

			if tt.valid {
				assert.Empty(t, diags)
				return
			}

			require.NotEmpty(t, diags)

			for _, d := range diags {
				assert.True(t, d.IsError(), d.Message)
				assert.NotEmpty(t, d.Message)
			}

			if tt.code != "" {
				require.Len(t, diags, 1)
				assert.Equal(t, tt.code, diags[0].Code)
			}
		})
	}
}

func TestOutput_NamespacedSchema(t *testing.T) {
	xsdText := readFixture(t, "person.xsd")

	tests := []struct {
		name  string
		xml   string
		valid bool
	}{
		{
			name: "valid",
			xml: `<Person xmlns="urn:vis:person">
  <FamilyName>Иванов</FamilyName>
  <FirstName>Иван</FirstName>
  <BirthDate>1990-01-31</BirthDate>
  <Phone>1</Phone>
  <Phone>2</Phone>
</Person>`,
			valid: true,
		},
		{
			name: "missing required",
			xml: `<Person xmlns="urn:vis:person">
  <FamilyName>Иванов</FamilyName>
</Person>`,
		},
		{
			name: "unexpected element",
			xml: `<Person xmlns="urn:vis:person">
  <FamilyName>Иванов</FamilyName>
  <FirstName>Иван</FirstName>
  <Nickname>Ваня</Nickname>
</Person>`,
		},
		{
			name: "wrong order",
			xml: `<Person xmlns="urn:vis:person">
  <FirstName>Иван</FirstName>
  <FamilyName>Иванов</FamilyName>
</Person>`,
		},
		{
			name: "invalid date",
			xml: `<Person xmlns="urn:vis:person">
  <FamilyName>Иванов</FamilyName>
  <FirstName>Иван</FirstName>
  <BirthDate>1990-02-31</BirthDate>
</Person>`,
		},
		{
			name: "no namespace",
			xml: `<Person>
  <FamilyName>Иванов</FamilyName>
  <FirstName>Иван</FirstName>
</Person>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, diags := Output(tt.xml, xsdText)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, len(diags) == 0, diags)
		})
	}
}

func TestOutput_NamedTypes(t *testing.T) {
	xsdText := readFixture(t, "document.xsd")

	tests := []struct {
		name  string
		xml   string
		valid bool
	}{
		{
			name: "valid with choice and ref",
			xml: `<Application>
  <Passport kind="internal"><Series>4510</Series><Number>123456</Number></Passport>
  <Email>a@b.c</Email>
  <Gender>F</Gender>
  <Note>ok</Note>
</Application>`,
			valid: true,
		},
		{
			name: "pattern mismatch",
			xml: `<Application>
  <Passport kind="internal"><Series>45A0</Series><Number>1</Number></Passport>
  <Phone>1</Phone>
</Application>`,
		},
		{
			name: "enumeration mismatch",
			xml: `<Application>
  <Passport kind="internal"><Series>4510</Series><Number>1</Number></Passport>
  <Phone>1</Phone>
  <Gender>X</Gender>
</Application>`,
		},
		{
			name: "int out of range",
			xml: `<Application>
  <Passport kind="internal"><Series>4510</Series><Number>99999999999</Number></Passport>
  <Phone>1</Phone>
</Application>`,
		},
		{
			name: "missing required attribute",
			xml: `<Application>
  <Passport><Series>4510</Series><Number>1</Number></Passport>
  <Phone>1</Phone>
</Application>`,
		},
		{
			name: "choice unsatisfied",
			xml: `<Application>
  <Passport kind="a"><Series>4510</Series><Number>1</Number></Passport>
</Application>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, diags := Output(tt.xml, xsdText)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, len(diags) == 0, diags)
		})
	}
}
