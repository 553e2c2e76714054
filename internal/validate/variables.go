package validate

import (
	"fmt"

	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/schema"
)

// Diagnostic codes produced by variable checks.
const (
	CodeUndeclaredVariable = "undeclared_variable"
	CodeUnusedVariable     = "unused_variable"
	CodeMappingVariable    = "mapping_variable_not_declared"
)

// contextVariable is bound by the renderer and never declared by #set.
const contextVariable = "request"

// Variables checks that every referenced variable is declared and every
// declared variable is referenced.
func Variables(template string, mappings []schema.MappingSuggestion) (bool, []diagnostic.Diagnostic) {
	var diags diagnostic.Diagnostics

	declared := make(map[string]bool)

	var declOrder []string

	for _, m := range declRe.FindAllStringSubmatch(template, -1) {
		if !declared[m[1]] {
			declared[m[1]] = true
			declOrder = append(declOrder, m[1])
		}
	}

	body := commentRe.ReplaceAllString(template, "")
	body = setRe.ReplaceAllString(body, "")

	used := make(map[string]bool)

	for _, loc := range refRe.FindAllStringSubmatchIndex(body, -1) {
		name := body[loc[2]:loc[3]]
		if name == contextVariable || used[name] {
			continue
		}

		used[name] = true

		if !declared[name] {
			diags.AddError(CodeUndeclaredVariable,
				fmt.Sprintf("Variable '$%s' is used but not declared", name), 0)
		}
	}

	for _, name := range declOrder {
		if !used[name] {
			diags.AddWarning(CodeUnusedVariable,
				fmt.Sprintf("Variable '$%s' is declared but not used", name), 0)
		}
	}

	for _, m := range mappings {
		if m.VariableName != "" && !declared[m.VariableName] {
			diags.AddWarning(CodeMappingVariable,
				fmt.Sprintf("Variable '$%s' for field %q is not declared", m.VariableName, m.JsonFieldID), 0)
		}
	}

	return diags.IsValid(), diags.All()
}
