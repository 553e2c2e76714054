package gen

import (
	"strings"

	"vmtemplate-generator/internal/schema"
)

type renderer struct {
	config    Config
	hierarchy map[string][]schema.XmlElement
	// mapped indexes mappings by element name; the last mapping wins.
	mapped map[string]schema.MappingSuggestion
	// open holds the elements on the current render path.
	open  map[string]bool
	lines []string
}

func (g *Generator) xmlBlock(mappings []schema.MappingSuggestion, xsd *schema.ParsedXsdSchema) string {
	r := &renderer{
		config: g.config,
		mapped: make(map[string]schema.MappingSuggestion, len(mappings)),
		open:   make(map[string]bool),
	}

	for _, m := range mappings {
		r.mapped[m.XmlElementName] = m
	}

	if xsd == nil || xsd.RootElement == "" {
		r.add(0, "<"+FallbackRoot+">")

		for _, m := range mappings {
			r.leaf(m, 1)
		}

		r.add(0, "</"+FallbackRoot+">")

		return strings.Join(r.lines, "\n")
	}

	r.hierarchy = xsd.Hierarchy()
	r.element(xsd.RootElement, 0)

	return strings.Join(r.lines, "\n")
}

func (r *renderer) add(depth int, line string) {
	r.lines = append(r.lines, strings.Repeat(r.config.Indent, depth)+line)
}

func (r *renderer) element(name string, depth int) {
	children := r.hierarchy[name]

	if len(children) == 0 || r.open[name] {
		if m, ok := r.mapped[name]; ok && len(children) == 0 {
			r.leaf(m, depth)
			return
		}

		r.add(depth, "<"+name+"></"+name+">")

		return
	}

	r.open[name] = true
	defer delete(r.open, name)

	r.add(depth, "<"+name+">")

	for _, child := range children {
		if m, ok := r.mapped[child.Name]; ok {
			r.leaf(m, depth+1)
			continue
		}

		r.element(child.Name, depth+1)
	}

	r.add(depth, "</"+name+">")
}

// leaf renders a mapped element with a quiet reference to its variable.
func (r *renderer) leaf(m schema.MappingSuggestion, depth int) {
	tag := "<" + m.XmlElementName + ">$!{" + m.VariableName + "}</" + m.XmlElementName + ">"

	if !r.config.IncludeNullChecks {
		r.add(depth, tag)
		return
	}

	r.add(depth, "#if($"+m.VariableName+")")
	r.add(depth, r.config.Indent+tag)
	r.add(depth, "#end")
}
