package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmtemplate-generator/internal/jsonschema"
	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/xsd"
)

const formJSON = `{"fields":[{"id":"lastName","label":"Фамилия","type":"string"}]}`

const personXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Person">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="FamilyName" type="xs:string"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	noEnv := func(string) string { return "" }
	cmd := NewRootCmd(noEnv)

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestParseJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.json": formJSON})

	out, err := execute(t, "parse", "json", filepath.Join(dir, "schema.json"), "-o", "json")
	require.NoError(t, err)

	var parsed struct {
		Fields []struct {
			ID   string `json:"id"`
			Path string `json:"path"`
		} `json:"fields"`
		TotalFields int `json:"total_fields"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 1, parsed.TotalFields)
	assert.Equal(t, "$request.lastName", parsed.Fields[0].Path)
}

func TestParseXSD_YAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.xsd": personXSD})

	out, err := execute(t, "parse", "xsd", filepath.Join(dir, "schema.xsd"))
	require.NoError(t, err)

	assert.Contains(t, out, "root_element: Person")
	assert.Contains(t, out, "name: FamilyName")
}

func TestParse_InvalidInput(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.json": `{"fields": [`})

	_, err := execute(t, "parse", "json", filepath.Join(dir, "schema.json"))
	assert.Error(t, err)
}

func TestParse_Strict(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"other.json": `{"title": "no fields here"}`,
		"other.xml":  `<root/>`,
	})

	out, err := execute(t, "parse", "json", filepath.Join(dir, "other.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "total_fields: 0")

	_, err = execute(t, "parse", "json", filepath.Join(dir, "other.json"), "--strict")
	require.ErrorIs(t, err, jsonschema.ErrNoFieldsKeys)

	_, err = execute(t, "parse", "xsd", filepath.Join(dir, "other.xml"), "--strict")
	require.ErrorIs(t, err, xsd.ErrNotSchema)
}

func TestMap_Explain(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.json": formJSON, "schema.xsd": personXSD})

	out, err := execute(t, "map", "--json", filepath.Join(dir, "schema.json"), "--xsd", filepath.Join(dir, "schema.xsd"),
		"--explain", "-o", "json")
	require.NoError(t, err)

	var rankings []struct {
		Field      string `json:"field"`
		Candidates []struct {
			Element struct {
				Name string `json:"name"`
			} `json:"element"`
		} `json:"candidates"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &rankings))
	require.Len(t, rankings, 1)
	assert.Equal(t, "lastName", rankings[0].Field)
	// Every named element is a top-level candidate, so both Person and
	// FamilyName are ranked.
	require.Len(t, rankings[0].Candidates, 2)
	assert.Equal(t, "FamilyName", rankings[0].Candidates[0].Element.Name)
}

func TestMap_Save(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.json": formJSON, "schema.xsd": personXSD})
	save := filepath.Join(dir, "mappings.yaml")

	out, err := execute(t, "map", "--json", filepath.Join(dir, "schema.json"), "--xsd", filepath.Join(dir, "schema.xsd"), "--save", save)
	require.NoError(t, err)
	assert.Contains(t, out, "FamilyName")

	mf, err := mapping.LoadFile(save)
	require.NoError(t, err)
	assert.Equal(t, "Person", mf.RootElement)
	require.Len(t, mf.Mappings, 1)
	assert.Equal(t, "FamilyName", mf.Mappings[0].Element)
}

func TestGenerate_Stdout(t *testing.T) {
	dir := writeFiles(t, map[string]string{"schema.json": formJSON, "schema.xsd": personXSD})

	out, err := execute(t, "generate", "--json", filepath.Join(dir, "schema.json"), "--xsd", filepath.Join(dir, "schema.xsd"), "--no-comments")
	require.NoError(t, err)

	assert.Equal(t, "#set($lastName = $request.lastName)\n\n<Person>\n  #if($lastName)\n    <FamilyName>$!{lastName}</FamilyName>\n  #end\n</Person>\n", out)
}

func TestGenerate_LockedMappingsRejected(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json":   formJSON,
		"schema.xsd":    personXSD,
		"mappings.yaml": "mappings:\n  - field: missing\n    element: FamilyName\n",
	})

	_, err := execute(t, "generate", "--json", filepath.Join(dir, "schema.json"), "--xsd", filepath.Join(dir, "schema.xsd"),
		"--mappings", filepath.Join(dir, "mappings.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestValidateTemplate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.vm": "#set($x = $request.x)\n<A>$!{x}</A>",
		"bad.vm":  "#if($x)\n<A>$!{x}</A>",
	})

	out, err := execute(t, "validate", "template", filepath.Join(dir, "good.vm"))
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	out, err = execute(t, "validate", "template", filepath.Join(dir, "bad.vm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template is invalid")
	assert.Contains(t, out, "Unmatched #if/#end")
}

func TestValidateOutput(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.xsd": personXSD,
		"good.xml":   "<Person><FamilyName>x</FamilyName></Person>",
		"bad.xml":    "<Person/>",
	})

	_, err := execute(t, "validate", "output", filepath.Join(dir, "good.xml"), filepath.Join(dir, "schema.xsd"))
	require.NoError(t, err)

	out, err := execute(t, "validate", "output", filepath.Join(dir, "bad.xml"), filepath.Join(dir, "schema.xsd"))
	require.Error(t, err)
	assert.NotEmpty(t, out)
}

func TestPreview(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"t.vm":      "#set($x = $request.a)\n#if($x)<T>$!{x}</T>#end",
		"data.json": `{"a": "hi"}`,
		"bad.json":  `{"a": `,
	})

	out, err := execute(t, "preview", filepath.Join(dir, "t.vm"), filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.Equal(t, "<T>hi</T>\n", out)

	_, err = execute(t, "preview", filepath.Join(dir, "t.vm"), filepath.Join(dir, "bad.json"))
	assert.Error(t, err)
}

func TestSimilarity(t *testing.T) {
	out, err := execute(t, "similarity", "lastName", "last_name", "-o", "json")
	require.NoError(t, err)

	var res similarityResult

	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 1.0, res.Similarity, 1e-9)
	assert.Equal(t, "levenshtein + fuzzy", res.Algorithm)
	assert.Equal(t, 0, res.Levenshtein)
}

func TestDump(t *testing.T) {
	out, err := execute(t, "similarity", "a", "b", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "commands.similarityResult")
}

func TestRun_Directory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"schema.json": formJSON,
		"schema.xsd":  personXSD,
		"data.json":   `{"lastName": "Иванов"}`,
	})

	out, err := execute(t, "run", dir, "--validate-preview", "-o", "json")
	require.NoError(t, err)

	var res struct {
		Success          bool   `json:"success"`
		PreviewOutput    string `json:"preview_output"`
		OutputValidation struct {
			IsValid bool `json:"is_valid"`
		} `json:"output_validation"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Success)
	assert.Contains(t, res.PreviewOutput, "<FamilyName>Иванов</FamilyName>")
	assert.True(t, res.OutputValidation.IsValid)

	template, err := os.ReadFile(filepath.Join(dir, "template.vm"))
	require.NoError(t, err)
	assert.Contains(t, string(template), "#set($lastName = $request.lastName)")

	mf, err := mapping.LoadFile(filepath.Join(dir, "mappings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Person", mf.RootElement)

	// The saved mappings are used on the next run.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mappings.yaml"),
		[]byte("mappings:\n  - field: lastName\n    element: FamilyName\n    variable: surname\n"), 0o644))

	_, err = execute(t, "run", dir, "--no-save")
	require.NoError(t, err)

	_, err = execute(t, "run", dir)
	require.NoError(t, err)

	template, err = os.ReadFile(filepath.Join(dir, "template.vm"))
	require.NoError(t, err)
	assert.Contains(t, string(template), "#set($surname = $request.lastName)")
}

func TestRun_MissingInputs(t *testing.T) {
	_, err := execute(t, "run", t.TempDir())
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	cmd := NewRootCmd(func(k string) string {
		if k == "VMGEN_LOG_FORMAT" {
			return "xml"
		}

		return ""
	})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "similarity", "a", "b"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestUnsupportedOutputFormat(t *testing.T) {
	_, err := execute(t, "similarity", "a", "b", "-o", "xml")
	assert.Error(t, err)
}
