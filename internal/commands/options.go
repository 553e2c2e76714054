package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/config"
	"vmtemplate-generator/internal/jsonschema"
	"vmtemplate-generator/internal/schema"
	"vmtemplate-generator/internal/xsd"
)

// globalOptions holds persistent flags and what they load.
type globalOptions struct {
	configPath string
	envFile    string
	verbose    bool
	output     string
	dump       bool

	getenv func(string) string
	cfg    *config.Config
	logger *slog.Logger
}

func (g *globalOptions) load(cmd *cobra.Command, _ []string) error {
	if g.output != "yaml" && g.output != "json" {
		return fmt.Errorf("unsupported output format %q", g.output)
	}

	if err := config.LoadEnv(g.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return err
	}

	getenv := g.getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	g.cfg = cfg
	g.logger = newLogger(cmd, cfg, g.verbose)

	return nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	w := cmd.ErrOrStderr()

	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func readJSONSchema(path string) (*schema.ParsedJsonSchema, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}

	return jsonschema.Parse(text)
}

func readXSD(path string) (*schema.ParsedXsdSchema, string, error) {
	text, err := readText(path)
	if err != nil {
		return nil, "", err
	}

	parsed, err := xsd.Parse(text)

	return parsed, text, err
}

// decodeData parses sample data into the tree preview renders from.
func decodeData(data []byte) (any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: test data: %v", schema.ErrInvalidFormat, err)
	}

	return v, nil
}

func readData(path string) (any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	return decodeData(data)
}
