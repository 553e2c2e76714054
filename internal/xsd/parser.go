package xsd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"vmtemplate-generator/internal/schema"
)

// readDocument parses XML text, wrapping syntax errors in schema.ErrInvalidFormat.
func readDocument(text string) (*etree.Document, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: invalid XSD: %v", schema.ErrInvalidFormat, err)
	}

	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: invalid XSD: document has no root element", schema.ErrInvalidFormat)
	}

	return doc, nil
}

// Parse parses XSD text into the canonical element list.
func Parse(text string) (*schema.ParsedXsdSchema, error) {
	doc, err := readDocument(text)
	if err != nil {
		return nil, err
	}

	root := doc.Root()

	elements, err := extractElements(root)
	if err != nil {
		return nil, fmt.Errorf("error parsing XSD schema: %w", err)
	}

	parsed := &schema.ParsedXsdSchema{
		Elements:      elements,
		TotalElements: len(elements),
		Namespace:     root.SelectAttrValue("targetNamespace", ""),
	}

	for _, e := range elements {
		if e.IsTopLevel() {
			parsed.RootElement = e.Name
			break
		}
	}

	return parsed, nil
}

func extractElements(root *etree.Element) ([]schema.XmlElement, error) {
	var (
		elements []schema.XmlElement
		firstErr error
	)

	walk(root, func(el *etree.Element) {
		if firstErr != nil || !isXSD(el, "element") {
			return
		}

		elem, ok, err := parseElement(el, "")
		if err != nil {
			firstErr = err
			return
		}

		if !ok {
			return
		}

		elements = append(elements, elem)

		if ct := xsdChild(el, "complexType"); ct != nil {
			nested, err := parseComplexType(ct, elem.Name)
			if err != nil {
				firstErr = err
				return
			}

			elements = append(elements, nested...)
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}

	return elements, nil
}

// parseComplexType lists the elements declared directly in the sequence,
// choice and all groups of an inline complexType.
func parseComplexType(ct *etree.Element, parent string) ([]schema.XmlElement, error) {
	var out []schema.XmlElement

	for _, group := range []string{"sequence", "choice", "all"} {
		g := xsdChild(ct, group)
		if g == nil {
			continue
		}

		for _, el := range xsdChildren(g, "element") {
			elem, ok, err := parseElement(el, parent)
			if err != nil {
				return nil, err
			}

			if ok {
				out = append(out, elem)
			}
		}
	}

	return out, nil
}

func parseElement(el *etree.Element, parent string) (schema.XmlElement, bool, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return schema.XmlElement{}, false, nil
	}

	minOccurs, maxOccurs, err := parseOccurs(el)
	if err != nil {
		return schema.XmlElement{}, false, fmt.Errorf("element %q: %w", name, err)
	}

	path := name
	if parent != "" {
		path = parent + "/" + name
	}

	return schema.XmlElement{
		Name:        name,
		Type:        el.SelectAttrValue("type", ""),
		Path:        path,
		Required:    minOccurs > 0,
		MinOccurs:   minOccurs,
		MaxOccurs:   maxOccurs,
		Parent:      parent,
		Description: documentation(el),
	}, true, nil
}

// parseOccurs reads minOccurs/maxOccurs with the XSD defaults of 1.
// A nil max means unbounded.
func parseOccurs(el *etree.Element) (int, *int, error) {
	minOccurs, err := strconv.Atoi(el.SelectAttrValue("minOccurs", "1"))
	if err != nil {
		return 0, nil, fmt.Errorf("invalid minOccurs: %w", err)
	}

	maxStr := el.SelectAttrValue("maxOccurs", "1")
	if maxStr == "unbounded" {
		return minOccurs, nil, nil
	}

	maxOccurs, err := strconv.Atoi(maxStr)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid maxOccurs: %w", err)
	}

	return minOccurs, &maxOccurs, nil
}

// ErrNotSchema is returned by CheckShape for XML that is not an xs:schema.
var ErrNotSchema = errors.New("not a valid XSD schema")

// CheckShape verifies that text is well-formed XML rooted at xs:schema.
func CheckShape(text string) error {
	doc, err := readDocument(text)
	if err != nil {
		return err
	}

	if !isXSD(doc.Root(), "schema") {
		return ErrNotSchema
	}

	return nil
}
