package preview

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Render executes template against data, which is bound as $request.
// data is a decoded JSON tree: maps, slices, strings, numbers, booleans, nil.
func Render(template string, data any) (string, error) {
	nodes, err := parse(template)
	if err != nil {
		return "", err
	}

	var src strings.Builder

	lower(&src, nodes)

	sc := &scope{vars: map[string]any{requestVariable: data}}

	tmpl, err := newProgram(sc).Parse(src.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	var out strings.Builder

	if err := tmpl.Execute(&out, nil); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	return out.String(), nil
}

// lower writes the text/template program for nodes.
func lower(b *strings.Builder, nodes []node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			fmt.Fprintf(b, "{{%s}}", strconv.Quote(n.text))
		case refNode:
			fmt.Fprintf(b, "{{ref %s %t %s}}", strconv.Quote(n.name), n.quiet, strconv.Quote(n.raw))
		case setNode:
			fmt.Fprintf(b, "{{set %s (path %s)}}", strconv.Quote(n.name), quoteAll(n.path))
		case ifNode:
			if n.cond.path != nil {
				fmt.Fprintf(b, "{{if truthy (path %s)}}", quoteAll(n.cond.path))
			} else {
				fmt.Fprintf(b, "{{if truthy (get %s)}}", strconv.Quote(n.cond.variable))
			}

			lower(b, n.body)
			b.WriteString("{{end}}")
		}
	}
}

func quoteAll(segments []string) string {
	quoted := make([]string, len(segments))
	for i, s := range segments {
		quoted[i] = strconv.Quote(s)
	}

	return strings.Join(quoted, " ")
}

// scope holds the variables of one execution.
type scope struct {
	vars map[string]any
}

func newProgram(sc *scope) *template.Template {
	return template.New("preview").Funcs(template.FuncMap{
		"get": func(name string) any {
			return sc.vars[name]
		},
		"set": func(name string, value any) string {
			sc.vars[name] = value
			return ""
		},
		"path": func(segments ...string) any {
			return lookup(sc.vars[requestVariable], segments)
		},
		"truthy": truthy,
		"ref": func(name string, quiet bool, raw string) string {
			v, ok := sc.vars[name]
			if !ok || v == nil {
				if quiet {
					return ""
				}

				return raw
			}

			return format(v)
		},
	})
}

// lookup resolves a child path through the data tree. Missing keys yield nil.
func lookup(data any, segments []string) any {
	x := jp.R()
	for _, seg := range segments {
		x = x.C(seg)
	}

	if found := x.Get(data); len(found) > 0 {
		return found[0]
	}

	return nil
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any, map[string]any:
		return oj.JSON(v)
	default:
		return fmt.Sprint(v)
	}
}
