// Package pipeline chains parsing, mapping, generation, validation and
// preview into one run over in-memory inputs.
package pipeline
