package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separators    = regexp.MustCompile(`[-_]`)
)

// NormalizeName normalizes a name or label for comparison.
// The normalization pipeline:
// 1. Compose to NFC so precomposed and decomposed labels compare equal.
// 2. Split lowercase/digit to uppercase boundaries with a space.
// 3. Replace '-' and '_' with spaces.
// 4. Lowercase and collapse whitespace.
//
// Examples:
//   - "lastName" -> "last name"
//   - "LAST_NAME" -> "last name"
//   - "XMLParser" -> "xmlparser"
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = separators.ReplaceAllString(s, " ")

	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
