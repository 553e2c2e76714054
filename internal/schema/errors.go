package schema

import "errors"

// ErrInvalidFormat reports malformed source text (JSON or XML syntax errors,
// or a document whose shape cannot be a schema at all).
var ErrInvalidFormat = errors.New("invalid format")
