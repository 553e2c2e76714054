package preview

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokRef
	tokSet
	tokIf
	tokEnd
	tokComment
)

type token struct {
	kind tokenKind
	text string
	ref  refNode
	set  setNode
	cond condition
	line int
}

func (t token) directive() bool {
	return t.kind == tokSet || t.kind == tokIf || t.kind == tokEnd || t.kind == tokComment
}

// requestVariable is the name the sample data is bound to.
const requestVariable = "request"

var unsupportedDirectives = []string{
	"foreach", "elseif", "else", "macro", "include", "parse",
	"define", "break", "stop", "evaluate",
}

func unsupported(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrUnsupportedConstruct, line, fmt.Sprintf(format, args...))
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrRender, line, fmt.Sprintf(format, args...))
}

// lexLine splits one source line into tokens.
func lexLine(src string, line int) ([]token, error) {
	var (
		tokens []token
		text   strings.Builder
	)

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{kind: tokText, text: text.String(), line: line})
			text.Reset()
		}
	}

	for i := 0; i < len(src); {
		rest := src[i:]

		switch {
		case strings.HasPrefix(rest, "##"):
			flush()
			tokens = append(tokens, token{kind: tokComment, line: line})
			i = len(src)
		case strings.HasPrefix(rest, "#*"):
			return nil, unsupported(line, "block comment")
		case strings.HasPrefix(rest, "#{"):
			return nil, unsupported(line, "braced directive %q", rest)
		case strings.HasPrefix(rest, "#set") && !identRune(rest, 4):
			flush()

			tok, n, err := lexSet(rest, line)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
			i += n
		case strings.HasPrefix(rest, "#if") && !identRune(rest, 3):
			flush()

			tok, n, err := lexIf(rest, line)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
			i += n
		case strings.HasPrefix(rest, "#end") && !identRune(rest, 4):
			flush()
			tokens = append(tokens, token{kind: tokEnd, line: line})
			i += 4
		case rest[0] == '#':
			if name := directiveName(rest); name != "" {
				return nil, unsupported(line, "#%s", name)
			}

			text.WriteByte('#')
			i++
		case rest[0] == '$':
			ref, n, err := lexRef(rest, line)
			if err != nil {
				return nil, err
			}

			if n == 0 {
				text.WriteByte('$')
				i++

				continue
			}

			flush()
			tokens = append(tokens, token{kind: tokRef, ref: ref, line: line})
			i += n
		default:
			text.WriteByte(rest[0])
			i++
		}
	}

	flush()

	return tokens, nil
}

func directiveName(s string) string {
	for _, name := range unsupportedDirectives {
		if strings.HasPrefix(s[1:], name) && !identRune(s, len(name)+1) {
			return name
		}
	}

	return ""
}

// identRune reports whether s continues an identifier at byte offset i.
func identRune(s string, i int) bool {
	if i >= len(s) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s[i:])

	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanIdent returns the length of the identifier at the start of s.
func scanIdent(s string) int {
	n := 0

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			n = i + len(string(r))
			continue
		}

		break
	}

	return n
}

// lexRef reads a reference at the start of s. It returns zero length when the
// dollar sign does not start a reference.
func lexRef(s string, line int) (refNode, int, error) {
	i := 1
	quiet := false

	if strings.HasPrefix(s[i:], "!") {
		quiet = true
		i++
	}

	braced := strings.HasPrefix(s[i:], "{")
	if braced {
		i++
	}

	n := scanIdent(s[i:])
	if n == 0 {
		if braced {
			return refNode{}, 0, malformed(line, "malformed reference %q", s)
		}

		return refNode{}, 0, nil
	}

	name := s[i : i+n]
	i += n

	if braced {
		if !strings.HasPrefix(s[i:], "}") {
			return refNode{}, 0, unsupported(line, "reference %q", s[:min(len(s), i+1)])
		}

		i++
	} else if strings.HasPrefix(s[i:], "(") || (strings.HasPrefix(s[i:], ".") && scanIdent(s[i+1:]) > 0) {
		return refNode{}, 0, unsupported(line, "property or method reference %q", s[:i+1])
	}

	return refNode{name: name, quiet: quiet, raw: s[:i], line: line}, i, nil
}

// parenBody returns the text between the parentheses following a directive
// keyword of length kw, and the number of bytes consumed.
func parenBody(s string, kw, line int) (string, int, error) {
	i := kw
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	if i >= len(s) || s[i] != '(' {
		return "", 0, malformed(line, "%s without arguments", s[:kw])
	}

	end := strings.IndexByte(s[i:], ')')
	if end < 0 {
		return "", 0, malformed(line, "unterminated %s", s[:kw])
	}

	return s[i+1 : i+end], i + end + 1, nil
}

func lexSet(s string, line int) (token, int, error) {
	body, n, err := parenBody(s, len("#set"), line)
	if err != nil {
		return token{}, 0, err
	}

	lhs, rhs, ok := strings.Cut(body, "=")
	if !ok {
		return token{}, 0, malformed(line, "#set without assignment")
	}

	name, ok := variable(strings.TrimSpace(lhs))
	if !ok {
		return token{}, 0, unsupported(line, "#set target %q", strings.TrimSpace(lhs))
	}

	path, ok := requestPath(strings.TrimSpace(rhs))
	if !ok {
		return token{}, 0, unsupported(line, "#set value %q", strings.TrimSpace(rhs))
	}

	return token{kind: tokSet, set: setNode{name: name, path: path, line: line}, line: line}, n, nil
}

func lexIf(s string, line int) (token, int, error) {
	body, n, err := parenBody(s, len("#if"), line)
	if err != nil {
		return token{}, 0, err
	}

	expr := strings.TrimSpace(body)

	if path, ok := requestPath(expr); ok {
		return token{kind: tokIf, cond: condition{path: path}, line: line}, n, nil
	}

	name, ok := variable(expr)
	if !ok {
		return token{}, 0, unsupported(line, "#if condition %q", expr)
	}

	return token{kind: tokIf, cond: condition{variable: name}, line: line}, n, nil
}

// variable parses $name, $!name, ${name} or $!{name}.
func variable(s string) (string, bool) {
	s, ok := strings.CutPrefix(s, "$")
	if !ok {
		return "", false
	}

	s = strings.TrimPrefix(s, "!")

	if inner, ok := strings.CutPrefix(s, "{"); ok {
		s, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return "", false
		}
	}

	if s == "" || scanIdent(s) != len(s) {
		return "", false
	}

	return s, true
}

// requestPath parses $request.a.b into its segments. Segments are JSON keys,
// so they are not restricted to identifiers.
func requestPath(s string) ([]string, bool) {
	rest, ok := strings.CutPrefix(s, "$"+requestVariable+".")
	if !ok {
		return nil, false
	}

	segments := strings.Split(rest, ".")
	for _, seg := range segments {
		if seg == "" || strings.ContainsAny(seg, " \t$(){}\"'") {
			return nil, false
		}
	}

	return segments, true
}
