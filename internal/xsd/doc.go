// Package xsd parses departmental XSD schemas into the canonical element list
// of package schema.
//
// Element discovery runs two passes that both contribute to the result: every
// xs:element declaration anywhere in the document is listed as top-level, and
// every element nested directly in an inline complexType is listed again with
// its enclosing element as parent. A nested declaration therefore appears
// twice, once without a parent and once with one. This duplication is kept on
// purpose; downstream stages rely on the parented copies for hierarchy and on
// the first parentless entry for the root element.
package xsd
