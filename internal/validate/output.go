package validate

import (
	"fmt"
	"strings"
	"testing/fstest"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"

	"vmtemplate-generator/internal/diagnostic"
)

// Diagnostic codes for documents the XSD validator could not report on
// violation by violation.
const (
	CodeSchemaSyntax = "xsd_syntax"
	CodeXMLSyntax    = "xml_syntax"
)

// schemaLocation names the XSD inside the in-memory filesystem it is loaded
// from. Relative includes and imports resolve against it and fail to load.
const schemaLocation = "schema.xsd"

// Output validates rendered XML against the XSD text. A schema that cannot be
// loaded yields a single diagnostic; so does XML that cannot be read. Every
// other violation is reported with its own code and line.
func Output(xml, xsdText string) (bool, []diagnostic.Diagnostic) {
	fsys := fstest.MapFS{schemaLocation: &fstest.MapFile{Data: []byte(xsdText)}}

	compiled, err := xsd.LoadWithOptions(fsys, schemaLocation, xsd.NewLoadOptions())
	if err != nil {
		return false, []diagnostic.Diagnostic{
			diagnostic.Error(CodeSchemaSyntax, fmt.Sprintf("XSD syntax error: %v", err), 0),
		}
	}

	err = compiled.Validate(strings.NewReader(xml))
	if err == nil {
		return true, nil
	}

	violations, ok := xsderrors.AsValidations(err)
	if !ok || len(violations) == 0 {
		return false, []diagnostic.Diagnostic{
			diagnostic.Error(CodeXMLSyntax, fmt.Sprintf("XML syntax error: %v", err), 0),
		}
	}

	var diags diagnostic.Diagnostics

	for _, v := range violations {
		msg := v.Message
		if v.Path != "" {
			msg = v.Path + ": " + msg
		}

		diags.Add(diagnostic.Error(v.Code, msg, v.Line))
	}

	return diags.IsValid(), diags.All()
}
