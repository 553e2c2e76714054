// Package schema defines the canonical, format-independent model shared by
// every pipeline stage: parsed JSON form fields, parsed XSD elements, and the
// mapping suggestions that connect them.
//
// Values in this package are produced once by a parser or the mapper and are
// treated as immutable afterwards.
package schema
