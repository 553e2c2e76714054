package validate

import (
	"fmt"
	"sort"
	"strings"

	"vmtemplate-generator/internal/diagnostic"
)

// Diagnostic codes produced by template checks.
const (
	CodeUnbalancedDirective = "unbalanced_directive"
	CodeMalformedReference  = "malformed_reference"
	CodeUnbalancedTag       = "unbalanced_tag"
	CodeInvalidSet          = "invalid_set"
)

// Syntax checks directive balance, reference syntax, XML tag balance and
// #set shape.
func Syntax(template string) (bool, []diagnostic.Diagnostic) {
	var diags diagnostic.Diagnostics

	ifs := len(ifOpenRe.FindAllStringIndex(template, -1))
	ends := len(endRe.FindAllStringIndex(template, -1))

	if ifs != ends {
		diags.AddError(CodeUnbalancedDirective,
			fmt.Sprintf("Unmatched #if/#end directives: %d #if vs %d #end", ifs, ends), 0)
	}

	checkReferences(&diags, template)
	checkTags(&diags, template)

	for _, loc := range setRe.FindAllStringIndex(template, -1) {
		directive := template[loc[0]:loc[1]]
		if !strings.Contains(directive, "=") {
			diags.AddError(CodeInvalidSet,
				fmt.Sprintf("Invalid #set directive syntax: %s", directive), lineAt(template, loc[0]))
		}
	}

	return diags.IsValid(), diags.All()
}

// checkReferences reports ${ and $!{ tokens that are not closed on their line
// or that contain another $ or { before the closing brace.
func checkReferences(diags *diagnostic.Diagnostics, template string) {
	for i, line := range strings.Split(template, "\n") {
		rest := line

		for {
			start := strings.Index(rest, "${")
			quiet := strings.Index(rest, "$!{")

			if quiet >= 0 && (start < 0 || quiet < start) {
				start = quiet
			}

			if start < 0 {
				break
			}

			open := strings.IndexByte(rest[start:], '{') + start
			end := strings.IndexByte(rest[open:], '}')

			if end < 0 {
				diags.AddError(CodeMalformedReference,
					fmt.Sprintf("Unterminated variable reference: %s", rest[start:]), i+1)

				break
			}

			body := rest[open+1 : open+end]
			if strings.ContainsAny(body, "${") {
				diags.AddError(CodeMalformedReference,
					fmt.Sprintf("Invalid variable syntax: %s", rest[start:open+end+1]), i+1)
			}

			rest = rest[open+end+1:]
		}
	}
}

// checkTags counts opening and closing tags per name once directives,
// comments and references are out of the way.
func checkTags(diags *diagnostic.Diagnostics, template string) {
	cleaned := commentRe.ReplaceAllString(template, "")
	cleaned = setRe.ReplaceAllString(cleaned, "")
	cleaned = ifRe.ReplaceAllString(cleaned, "")
	cleaned = endRe.ReplaceAllString(cleaned, "")
	cleaned = valueRe.ReplaceAllString(cleaned, "VALUE")

	opened := make(map[string]int)
	closed := make(map[string]int)

	for _, m := range openTagRe.FindAllStringSubmatch(cleaned, -1) {
		if strings.HasSuffix(m[0], "/>") {
			continue
		}

		opened[m[1]]++
	}

	for _, m := range closeTagRe.FindAllStringSubmatch(cleaned, -1) {
		closed[m[1]]++
	}

	names := make([]string, 0, len(opened)+len(closed))

	for name := range opened {
		names = append(names, name)
	}

	for name := range closed {
		if _, ok := opened[name]; !ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	for _, name := range names {
		if opened[name] != closed[name] {
			diags.AddError(CodeUnbalancedTag,
				fmt.Sprintf("Unmatched XML tags for <%s>: %d opening vs %d closing", name, opened[name], closed[name]), 0)
		}
	}
}

func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
