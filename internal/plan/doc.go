// Package plan produces the field mapping between a parsed JSON form schema
// and a parsed XSD schema.
//
// Mapping pipeline:
//  1. Pick the candidate elements: parentless elements, or every element when
//     none is parentless
//  2. For each JSON field independently, rank the candidates with the fuzzy
//     matcher and keep the single best one
//  3. Accept the best candidate when it reaches the minimum confidence
//  4. Emit diagnostics (low-confidence mappings, unmapped fields, type
//     mismatches)
//
// Matching is greedy and non-exclusive: several fields may map onto the same
// element, and an accepted mapping never removes an element from the pool.
package plan
