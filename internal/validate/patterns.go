package validate

import "regexp"

// ident matches template identifiers. Variable names derived from Cyrillic
// labels are letters outside ASCII, so \w is not enough.
const ident = `[\p{L}_][\p{L}\p{N}_]*`

var (
	ifOpenRe   = regexp.MustCompile(`#if\s*\(`)
	endRe      = regexp.MustCompile(`#end\b`)
	setRe      = regexp.MustCompile(`#set\s*\([^)]*\)`)
	ifRe       = regexp.MustCompile(`#if\s*\([^)]*\)`)
	commentRe  = regexp.MustCompile(`##[^\n]*`)
	declRe     = regexp.MustCompile(`#set\s*\(\s*\$(` + ident + `)\s*=`)
	refRe      = regexp.MustCompile(`\$!?\{?(` + ident + `)`)
	valueRe    = regexp.MustCompile(`\$!?\{[^}\n]*\}|\$!?` + ident)
	openTagRe  = regexp.MustCompile(`<(` + ident + `(?:[.:-][\p{L}\p{N}_]+)*)(?:\s[^<>]*)?>`)
	closeTagRe = regexp.MustCompile(`</(` + ident + `(?:[.:-][\p{L}\p{N}_]+)*)\s*>`)
)
