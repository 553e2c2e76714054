package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Mapper.MinConfidenceScore = 0.6
	cfg.Generator.IncludeComments = false
	cfg.Files.Template = "out.vm"

	require.NoError(t, cfg.Save(cfgPath))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\nmapper:\n  auto_map_threshold: 0.8\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, cfg.Mapper.AutoMapThreshold, 1e-9)
	assert.InDelta(t, 0.5, cfg.Mapper.MinConfidenceScore, 1e-9)
	assert.True(t, cfg.Generator.IncludeNullChecks)
	assert.Equal(t, "  ", cfg.Generator.Indent)
	assert.Equal(t, "schema.xsd", cfg.Files.XSDSchema)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	bad := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(bad, []byte("mapper: [1"), 0o644))

	_, err = LoadOrDefault(bad)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unsupported version", mutate: func(c *Config) { c.Version = 99 }, wantErr: "unsupported config version"},
		{name: "min confidence range", mutate: func(c *Config) { c.Mapper.MinConfidenceScore = 1.5 }, wantErr: "min_confidence_score"},
		{name: "threshold range", mutate: func(c *Config) { c.Mapper.AutoMapThreshold = -0.1 }, wantErr: "auto_map_threshold"},
		{name: "max candidates", mutate: func(c *Config) { c.Mapper.MaxCandidates = 0 }, wantErr: "max_candidates"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvMinConfidenceScore: "0.4",
		EnvAutoMapThreshold:   "0.9",
		EnvIncludeComments:    "false",
		EnvLogLevel:           "debug",
		EnvLogFormat:          "json",
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.InDelta(t, 0.4, cfg.Mapper.MinConfidenceScore, 1e-9)
	assert.InDelta(t, 0.9, cfg.Mapper.AutoMapThreshold, 1e-9)
	assert.False(t, cfg.Generator.IncludeComments)
	assert.True(t, cfg.Generator.IncludeNullChecks)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())

	plan := cfg.PlanConfig()
	assert.InDelta(t, 0.4, plan.MinConfidence, 1e-9)
	assert.False(t, cfg.GenConfig().IncludeComments)
}

func TestConfig_ApplyEnvInvalid(t *testing.T) {
	for _, key := range []string{EnvMinConfidenceScore, EnvAutoMapThreshold, EnvIncludeComments, EnvIncludeNullChecks} {
		cfg := Default()
		err := cfg.ApplyEnv(func(k string) string {
			if k == key {
				return "nope"
			}

			return ""
		})

		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvLogFormat+"=json\n"), 0o644))

	t.Setenv(EnvLogFormat, "")
	require.NoError(t, os.Unsetenv(EnvLogFormat))

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "json", os.Getenv(EnvLogFormat))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(os.Getenv))
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestConfig_Layout(t *testing.T) {
	cfg := Default()
	cfg.Files.Template = "out.vm"

	layout := cfg.Layout()

	assert.Equal(t, "schema.json", layout.JSONSchema)
	assert.Equal(t, "out.vm", layout.Template)
}
