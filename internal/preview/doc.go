// Package preview renders generated templates against sample data.
//
// Only the subset the generator emits is understood: #set from a $request
// path, a single level of #if ... #end, quiet and plain variable references
// and ## line comments. Anything else is rejected with
// ErrUnsupportedConstruct rather than rendered approximately.
//
// A template is lexed line by line into an AST, lowered to a text/template
// program and executed with the sample data bound as request.
package preview
