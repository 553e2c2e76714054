// Package config handles vmgen configuration: a versioned YAML file with
// defaults, overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"vmtemplate-generator/internal/gen"
	"vmtemplate-generator/internal/plan"
	"vmtemplate-generator/internal/storage"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the config file looked up in the working directory.
const FileName = "vmgen.yaml"

// Config represents the vmgen.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version"`
	Mapper    MapperConfig    `yaml:"mapper"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
	Files     FilesConfig     `yaml:"files"`
}

// MapperConfig holds auto-mapping thresholds.
type MapperConfig struct {
	MinConfidenceScore float64 `yaml:"min_confidence_score"`
	AutoMapThreshold   float64 `yaml:"auto_map_threshold"`
	MaxCandidates      int     `yaml:"max_candidates"`
	AmbiguityThreshold float64 `yaml:"ambiguity_threshold"`
}

// GeneratorConfig holds template generation flags.
type GeneratorConfig struct {
	IncludeComments   bool   `yaml:"include_comments"`
	IncludeNullChecks bool   `yaml:"include_null_checks"`
	Indent            string `yaml:"indent"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FilesConfig names the files of a project directory.
type FilesConfig struct {
	JSONSchema string `yaml:"json_schema"`
	XSDSchema  string `yaml:"xsd_schema"`
	TestData   string `yaml:"test_data"`
	Mappings   string `yaml:"mappings"`
	Template   string `yaml:"template"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	mapper := plan.DefaultConfig()
	generator := gen.DefaultConfig()

	return &Config{
		Version: CurrentConfigVersion,
		Mapper: MapperConfig{
			MinConfidenceScore: mapper.MinConfidence,
			AutoMapThreshold:   mapper.AutoMapThreshold,
			MaxCandidates:      mapper.MaxCandidates,
			AmbiguityThreshold: mapper.AmbiguityThreshold,
		},
		Generator: GeneratorConfig{
			IncludeComments:   generator.IncludeComments,
			IncludeNullChecks: generator.IncludeNullChecks,
			Indent:            generator.Indent,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Files: FilesConfig(storage.DefaultLayout()),
	}
}

// Load reads a Config from a file path. Keys absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)

	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}

	if !inUnitRange(c.Mapper.MinConfidenceScore) {
		return fmt.Errorf("mapper.min_confidence_score must be in [0, 1], got %v", c.Mapper.MinConfidenceScore)
	}

	if !inUnitRange(c.Mapper.AutoMapThreshold) {
		return fmt.Errorf("mapper.auto_map_threshold must be in [0, 1], got %v", c.Mapper.AutoMapThreshold)
	}

	if !inUnitRange(c.Mapper.AmbiguityThreshold) {
		return fmt.Errorf("mapper.ambiguity_threshold must be in [0, 1], got %v", c.Mapper.AmbiguityThreshold)
	}

	if c.Mapper.MaxCandidates < 1 {
		return fmt.Errorf("mapper.max_candidates must be positive, got %d", c.Mapper.MaxCandidates)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

// PlanConfig returns the auto-mapping configuration.
func (c *Config) PlanConfig() plan.Config {
	return plan.Config{
		MinConfidence:      c.Mapper.MinConfidenceScore,
		AutoMapThreshold:   c.Mapper.AutoMapThreshold,
		MaxCandidates:      c.Mapper.MaxCandidates,
		AmbiguityThreshold: c.Mapper.AmbiguityThreshold,
	}
}

// GenConfig returns the template generator configuration.
func (c *Config) GenConfig() gen.Config {
	return gen.Config{
		IncludeComments:   c.Generator.IncludeComments,
		IncludeNullChecks: c.Generator.IncludeNullChecks,
		Indent:            c.Generator.Indent,
	}
}

// Layout returns the project directory layout.
func (c *Config) Layout() storage.Layout {
	return storage.Layout(c.Files)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
