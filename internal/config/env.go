package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding file settings.
const (
	EnvMinConfidenceScore = "VMGEN_MIN_CONFIDENCE_SCORE"
	EnvAutoMapThreshold   = "VMGEN_AUTO_MAP_THRESHOLD"
	EnvAmbiguity          = "VMGEN_AMBIGUITY_THRESHOLD"
	EnvLogLevel           = "VMGEN_LOG_LEVEL"
	EnvLogFormat          = "VMGEN_LOG_FORMAT"
	EnvIncludeComments    = "VMGEN_INCLUDE_COMMENTS"
	EnvIncludeNullChecks  = "VMGEN_INCLUDE_NULL_CHECKS"
)

// LoadEnv loads .env files into the process environment. Missing files are
// skipped; variables already set are not overwritten.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", name, err)
		}
	}

	return nil
}

// ApplyEnv overrides settings from the environment. Unset and empty
// variables leave the setting untouched.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if err := envFloat(getenv, EnvMinConfidenceScore, &c.Mapper.MinConfidenceScore); err != nil {
		return err
	}

	if err := envFloat(getenv, EnvAutoMapThreshold, &c.Mapper.AutoMapThreshold); err != nil {
		return err
	}

	if err := envFloat(getenv, EnvAmbiguity, &c.Mapper.AmbiguityThreshold); err != nil {
		return err
	}

	if err := envBool(getenv, EnvIncludeComments, &c.Generator.IncludeComments); err != nil {
		return err
	}

	if err := envBool(getenv, EnvIncludeNullChecks, &c.Generator.IncludeNullChecks); err != nil {
		return err
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}

	return nil
}

func envFloat(getenv func(string) string, key string, dst *float64) error {
	v := getenv(key)
	if v == "" {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	*dst = f

	return nil
}

func envBool(getenv func(string) string, key string, dst *bool) error {
	v := getenv(key)
	if v == "" {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	*dst = b

	return nil
}
