package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"vmtemplate-generator/internal/pipeline"
	"vmtemplate-generator/internal/schema"
	"vmtemplate-generator/internal/storage"
)

type runOptions struct {
	preview         bool
	validatePreview bool
	noSave          bool
	noComments      bool
	noNullChecks    bool
}

func registerRunCmd(parent *cobra.Command, g *globalOptions) {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [DIR]",
		Short: "Run the whole pipeline over a project directory",
		Long: `Run reads the form schema, the XSD and optional sample data from DIR (default
the working directory), maps, generates, validates and previews, then saves the
mappings and the template next to the inputs. An existing mapping file is used
instead of auto-mapping.`,
		Example: `  vmgen run ./project --preview --validate-preview`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			return runRun(cmd, g, storage.OpenDir(dir, g.cfg.Layout(), g.logger), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the template against the sample data")
	cmd.Flags().BoolVar(&opts.validatePreview, "validate-preview", false, "Validate the preview against the XSD")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "Do not write mappings and template")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "Omit comments")
	cmd.Flags().BoolVar(&opts.noNullChecks, "no-null-checks", false, "Omit #if null checks")

	parent.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, g *globalOptions, dir *storage.Dir, opts *runOptions) error {
	req, err := buildRequest(dir)
	if err != nil {
		return err
	}

	runOpts := pipeline.DefaultOptions()
	runOpts.Mapper = g.cfg.PlanConfig()
	runOpts.Generator = g.cfg.GenConfig()
	runOpts.IncludePreview = opts.preview || opts.validatePreview
	runOpts.ValidatePreview = opts.validatePreview

	if opts.noComments {
		runOpts.Generator.IncludeComments = false
	}

	if opts.noNullChecks {
		runOpts.Generator.IncludeNullChecks = false
	}

	res, err := pipeline.NewRunner(runOpts, g.logger).Run(req)
	if err != nil {
		return err
	}

	if err := g.printValue(cmd.OutOrStdout(), res); err != nil {
		return err
	}

	if !res.Success {
		return errors.New(res.Error)
	}

	if !opts.noSave {
		if err := persist(dir, res); err != nil {
			return err
		}
	}

	return failOnErrors("template", res.Validation.Errors)
}

func buildRequest(dir *storage.Dir) (pipeline.Request, error) {
	var req pipeline.Request

	jsonText, err := dir.Read(schema.FileTypeJSONSchema)
	if err != nil {
		return req, err
	}

	xsdText, err := dir.Read(schema.FileTypeXSDSchema)
	if err != nil {
		return req, err
	}

	req.JSONSchema = string(jsonText)
	req.XSDSchema = string(xsdText)

	if dir.Exists(schema.FileTypeTestData) {
		data, err := dir.Read(schema.FileTypeTestData)
		if err != nil {
			return req, err
		}

		if req.TestData, err = decodeData(data); err != nil {
			return req, err
		}
	}

	mf, err := dir.LoadMappings()

	switch {
	case err == nil:
		req.Mappings = mf
	case !errors.Is(err, storage.ErrNotFound):
		return req, err
	}

	return req, nil
}

// persist stores the accepted mappings and the generated template.
func persist(sink storage.Sink, res *pipeline.Result) error {
	if err := sink.SaveMappings(res.ParsedXSD.RootElement, res.Mappings); err != nil {
		return err
	}

	return sink.SaveTemplate(res.Template)
}
