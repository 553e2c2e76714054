package preview

import "strings"

// parse builds the AST of a template. Lines holding only directives,
// comments and whitespace contribute no output, not even their newline.
func parse(template string) ([]node, error) {
	var (
		root []node
		open *ifNode
	)

	emit := func(n node) {
		if open != nil {
			open.body = append(open.body, n)
			return
		}

		root = append(root, n)
	}

	lines := strings.Split(template, "\n")

	for i, src := range lines {
		line := i + 1

		tokens, err := lexLine(src, line)
		if err != nil {
			return nil, err
		}

		silent := directiveOnly(tokens)

		for _, tok := range tokens {
			switch tok.kind {
			case tokText:
				if !silent {
					emit(textNode{text: tok.text})
				}
			case tokRef:
				emit(tok.ref)
			case tokSet:
				emit(tok.set)
			case tokIf:
				if open != nil {
					return nil, unsupported(line, "nested #if (outer #if on line %d)", open.line)
				}

				open = &ifNode{cond: tok.cond, line: line}
			case tokEnd:
				if open == nil {
					return nil, malformed(line, "#end without #if")
				}

				root = append(root, *open)
				open = nil
			case tokComment:
			}
		}

		if !silent && i < len(lines)-1 {
			emit(textNode{text: "\n"})
		}
	}

	if open != nil {
		return nil, malformed(open.line, "#if without #end")
	}

	return root, nil
}

func directiveOnly(tokens []token) bool {
	directive := false

	for _, tok := range tokens {
		switch {
		case tok.directive():
			directive = true
		case tok.kind == tokText && strings.TrimSpace(tok.text) == "":
		default:
			return false
		}
	}

	return directive
}
