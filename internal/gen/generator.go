package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"vmtemplate-generator/internal/schema"
)

// Header is the comment block opening every commented template.
const Header = `##
## VM Template for EPGU-VIS Integration
## Generated automatically
##
## This template transforms JSON data from EPGU forms to XML for departmental systems
##`

// FallbackRoot wraps the mapped elements when the XSD declares no root.
const FallbackRoot = "Root"

var vmTemplate = template.Must(template.New("vm").Parse(
	`{{if .Comments}}{{.Header}}
## Variable declarations
{{end}}{{range .Declarations}}{{if and $.Comments .Label}}## {{.Label}}
{{end}}#set(${{.Variable}} = {{.Path}})
{{end}}{{if or .Comments .Declarations}}
{{end}}{{if .Comments}}## XML output structure
{{end}}{{.Body}}`))

// templateData holds all data needed for the VM template.
type templateData struct {
	Comments     bool
	Header       string
	Declarations []declaration
	Body         string
}

type declaration struct {
	Label    string
	Variable string
	Path     string
}

// Generator generates Velocity templates from mappings and an XSD structure.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Indent == "" {
		config.Indent = DefaultConfig().Indent
	}

	return &Generator{config: config}
}

// Generate renders the template for mappings over the XSD structure.
func Generate(mappings []schema.MappingSuggestion, xsd *schema.ParsedXsdSchema, config Config) (string, error) {
	return NewGenerator(config).Generate(mappings, xsd)
}

// Generate renders the template for mappings over the XSD structure.
func (g *Generator) Generate(mappings []schema.MappingSuggestion, xsd *schema.ParsedXsdSchema) (string, error) {
	data := templateData{
		Comments: g.config.IncludeComments,
		Header:   Header,
		Body:     g.xmlBlock(mappings, xsd),
	}

	for _, m := range mappings {
		data.Declarations = append(data.Declarations, declaration{
			Label:    singleLine(m.JsonFieldLabel),
			Variable: m.VariableName,
			Path:     m.JsonFieldPath,
		})
	}

	var buf bytes.Buffer

	if err := vmTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// CountLines returns the number of newline-separated lines in text.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// singleLine keeps a label from escaping its ## comment.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
