// Package main provides the CLI entrypoint for vmgen.
//
// vmgen turns a government form schema and a departmental XSD into a
// Velocity template:
//   - Parses the form JSON schema and the XSD into a canonical model
//   - Suggests field-to-element mappings by fuzzy and semantic matching
//   - Lets humans review and lock mappings via YAML
//   - Generates, validates and previews the template
package main

import (
	"context"
	"fmt"
	"os"

	"vmtemplate-generator/internal/commands"
)

func main() {
	if err := commands.Execute(context.Background(), os.Args[1:], os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
