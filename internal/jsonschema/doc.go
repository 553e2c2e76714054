// Package jsonschema parses government-form JSON schemas into the canonical
// field list of package schema.
//
// Three document shapes are recognised, in precedence order:
//   - form-builder documents (top-level "screens" or "service" keys) whose
//     components are objects carrying "id" and "type";
//   - documents with an explicit "fields" list;
//   - JSON Schema style documents with a "properties" map.
//
// Anything else parses to an empty field list. Documents are decoded into an
// order-preserving tree so fields keep the order they appear in the source.
package jsonschema
