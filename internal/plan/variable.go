package plan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// idSeparators matches every run of characters that cannot appear in a
// template identifier, '-' and '_' included.
var idSeparators = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// digitPrefix is prepended to names that would start with a digit.
const digitPrefix = "v"

// VariableName derives the template variable name for a field id.
//
// Lower-camelCase ids made only of letters and digits are used as is. Other
// ids are split on '-', '_' and any character outside letters and digits, and
// joined in camelCase: the first part lowercased, later parts capitalized. An
// id without such characters gets its first letter lowercased. A name that
// would start with a digit is prefixed with "v".
func VariableName(id string) string {
	if id == "" {
		return id
	}

	first, size := utf8.DecodeRuneInString(id)

	if unicode.IsLower(first) && !idSeparators.MatchString(id) {
		return id
	}

	var name string

	if parts := idSeparators.Split(id, -1); len(parts) > 1 {
		var b strings.Builder

		b.WriteString(strings.ToLower(parts[0]))

		for _, p := range parts[1:] {
			b.WriteString(capitalize(p))
		}

		name = b.String()
	} else {
		name = string(unicode.ToLower(first)) + id[size:]
	}

	if name == "" {
		return digitPrefix
	}

	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		return digitPrefix + name
	}

	return name
}

// capitalize title-cases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToTitle(first)) + strings.ToLower(s[size:])
}
