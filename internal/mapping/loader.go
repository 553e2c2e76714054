package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vmtemplate-generator/internal/plan"
	"vmtemplate-generator/internal/schema"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]

		if m.Variable == "" {
			m.Variable = plan.VariableName(m.Field)
		}

		if m.Path == "" && m.Field != "" {
			m.Path = schema.RequestPrefix + "." + m.Field
		}
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
