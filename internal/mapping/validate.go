package mapping

import (
	"fmt"
	"regexp"
	"slices"

	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/schema"
)

// identifier matches template variable names.
var identifier = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

// Validate validates a mapping file against the parsed schemas it will be
// applied to. A nil schema skips the checks that need it.
func Validate(mf *MappingFile, form *schema.ParsedJsonSchema, xsd *schema.ParsedXsdSchema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", 0)
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping file version %q, expected %q", mf.Version, CurrentVersion), 0)
	}

	if xsd != nil && mf.RootElement != "" && xsd.RootElement != "" && mf.RootElement != xsd.RootElement {
		res.AddWarning("root_element_changed",
			fmt.Sprintf("mappings were made for root element %q, schema root is %q", mf.RootElement, xsd.RootElement), 0)
	}

	seenFields := make(map[string]struct{})
	variables := make(map[string]string)

	for i := range mf.Mappings {
		validateEntry(res, &mf.Mappings[i], i, form, xsd, seenFields, variables)
	}

	for _, id := range mf.Ignore {
		if _, mapped := seenFields[id]; mapped {
			res.AddWarning("ignored_field_mapped", fmt.Sprintf("field %q is both ignored and mapped", id), 0)
		}

		if form != nil {
			if _, ok := form.Field(id); !ok {
				res.AddWarning("ignored_field_not_found", fmt.Sprintf("ignored field %q not found in JSON schema", id), 0)
			}
		}
	}

	return res
}

func validateEntry(
	res *diagnostic.Diagnostics,
	m *FieldMapping,
	index int,
	form *schema.ParsedJsonSchema,
	xsd *schema.ParsedXsdSchema,
	seenFields map[string]struct{},
	variables map[string]string,
) {
	where := fmt.Sprintf("mappings[%d]", index)

	if m.Field == "" {
		res.AddError("missing_field", where+": field is required", 0)
		return
	}

	if _, dup := seenFields[m.Field]; dup {
		res.AddError("duplicate_field", fmt.Sprintf("%s: field %q is mapped more than once", where, m.Field), 0)
	}

	seenFields[m.Field] = struct{}{}

	if form != nil {
		if _, ok := form.Field(m.Field); !ok {
			res.AddError("json_field_not_found", fmt.Sprintf("%s: field %q not found in JSON schema", where, m.Field), 0)
		}
	}

	switch {
	case m.Element == "":
		res.AddError("missing_element", fmt.Sprintf("%s: element is required for field %q", where, m.Field), 0)
	case xsd != nil:
		validateElement(res, m, where, xsd)
	}

	if !identifier.MatchString(m.Variable) {
		res.AddError("invalid_variable", fmt.Sprintf("%s: %q is not a valid variable name", where, m.Variable), 0)
	} else if owner, taken := variables[m.Variable]; taken && owner != m.Field {
		res.AddWarning("duplicate_variable",
			fmt.Sprintf("%s: variable %q is already declared for field %q", where, m.Variable, owner), 0)
	} else {
		variables[m.Variable] = m.Field
	}

	if m.Confidence != nil && (*m.Confidence < 0 || *m.Confidence > 1) {
		res.AddError("invalid_confidence",
			fmt.Sprintf("%s: confidence %.2f is outside [0, 1]", where, *m.Confidence), 0)
	}
}

func validateElement(res *diagnostic.Diagnostics, m *FieldMapping, where string, xsd *schema.ParsedXsdSchema) {
	if _, ok := xsd.Element(m.Element); !ok {
		res.AddError("xml_element_not_found", fmt.Sprintf("%s: element %q not found in XSD schema", where, m.Element), 0)
		return
	}

	if m.ElementPath == "" {
		return
	}

	found := slices.ContainsFunc(xsd.Elements, func(e schema.XmlElement) bool {
		return e.Name == m.Element && e.Path == m.ElementPath
	})
	if !found {
		res.AddWarning("element_path_mismatch",
			fmt.Sprintf("%s: no element %q at path %q", where, m.Element, m.ElementPath), 0)
	}
}
