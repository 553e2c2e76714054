// Package mapping provides the YAML mapping file: parsing, serialization, and
// validation of accepted JSON field to XML element mappings.
//
// A mapping file pins the output of auto-mapping so that later runs regenerate
// the same template, and lets a reviewer correct or extend individual entries.
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "1"
//	root_element: Person
//	mappings:
//	  - field: lastName
//	    label: Фамилия
//	    element: FamilyName
//	    element_path: Person/FamilyName
//	    variable: lastName        # defaults to the derived variable name
//	    path: $request.lastName   # defaults to $request.<field>
//	    confidence: 0.82
//	    auto: true
//	    type: string
//	  - field: c58
//	    element: BirthDate
//	# JSON fields deliberately left unmapped
//	ignore:
//	  - c59
//
// # Validation
//
// Validate checks a file against the parsed schemas it is applied to:
//
//   - every field exists in the JSON schema and is mapped at most once
//   - every element exists in the XSD schema
//   - variable names are identifiers
//   - confidence values lie in [0, 1]
//
// Errors make the file unusable. Warnings are reported but tolerated: an
// element_path that no element carries, an ignored field that is also mapped,
// or two fields sharing one variable.
package mapping
