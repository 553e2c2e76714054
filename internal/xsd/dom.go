package xsd

import (
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the XML Schema namespace URI.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// isXSD reports whether el is the XSD construct named local.
func isXSD(el *etree.Element, local string) bool {
	return el.Tag == local && el.NamespaceURI() == Namespace
}

// xsdChildren returns the direct children of el that are the XSD construct local.
func xsdChildren(el *etree.Element, local string) []*etree.Element {
	var out []*etree.Element

	for _, child := range el.ChildElements() {
		if isXSD(child, local) {
			out = append(out, child)
		}
	}

	return out
}

// xsdChild returns the first direct child of el that is the XSD construct local.
func xsdChild(el *etree.Element, local string) *etree.Element {
	for _, child := range el.ChildElements() {
		if isXSD(child, local) {
			return child
		}
	}

	return nil
}

// walk visits el and its descendants in document order.
func walk(el *etree.Element, visit func(*etree.Element)) {
	stack := []*etree.Element{el}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(cur)

		kids := cur.ChildElements()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

func documentation(el *etree.Element) string {
	annotation := xsdChild(el, "annotation")
	if annotation == nil {
		return ""
	}

	doc := xsdChild(annotation, "documentation")
	if doc == nil {
		return ""
	}

	return strings.TrimSpace(doc.Text())
}
