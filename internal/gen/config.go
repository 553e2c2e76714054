package gen

// Config holds configuration for template generation.
type Config struct {
	// IncludeComments enables the header and section comments.
	IncludeComments bool
	// IncludeNullChecks wraps every mapped element in an #if block.
	IncludeNullChecks bool
	// Indent is the indentation added per nesting level.
	Indent string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		IncludeComments:   true,
		IncludeNullChecks: true,
		Indent:            "  ",
	}
}
