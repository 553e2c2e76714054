package pipeline

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"vmtemplate-generator/internal/diagnostic"
	"vmtemplate-generator/internal/gen"
	"vmtemplate-generator/internal/jsonschema"
	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/plan"
	"vmtemplate-generator/internal/preview"
	"vmtemplate-generator/internal/schema"
	"vmtemplate-generator/internal/validate"
	"vmtemplate-generator/internal/xsd"
)

// Runner executes runs with fixed options.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default().
func NewRunner(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{opts: opts, logger: logger}
}

// Run executes one run with the default logger.
func Run(req Request, opts Options) (*Result, error) {
	return NewRunner(opts, nil).Run(req)
}

// Run parses both schemas, maps fields, generates the template and
// validates it. Schema and mapping problems produce an unsuccessful Result;
// only unexpected failures return an error.
func (r *Runner) Run(req Request) (*Result, error) {
	res := &Result{
		RunID:        uuid.NewString(),
		Mappings:     []schema.MappingSuggestion{},
		UnmappedJSON: []string{},
		UnmappedXML:  []string{},
	}
	log := r.logger.With("run_id", res.RunID)

	var err error

	start := time.Now()

	res.ParsedJSON, err = jsonschema.Parse(req.JSONSchema)
	if err != nil {
		return r.fail(log, res, err), nil
	}

	log.Debug("stage done", "stage", "parse_json", "fields", res.ParsedJSON.TotalFields, "elapsed", time.Since(start))
	start = time.Now()

	res.ParsedXSD, err = xsd.Parse(req.XSDSchema)
	if err != nil {
		return r.fail(log, res, err), nil
	}

	log.Debug("stage done", "stage", "parse_xsd", "elements", res.ParsedXSD.TotalElements, "elapsed", time.Since(start))
	start = time.Now()

	var checks diagnostic.Diagnostics

	if req.Mappings != nil {
		diags := mapping.Validate(req.Mappings, res.ParsedJSON, res.ParsedXSD)
		if !diags.IsValid() {
			return r.fail(log, res, fmt.Errorf("invalid mappings: %w", diags.Error())), nil
		}

		checks.Merge(diagnostic.Diagnostics{Warnings: diags.Warnings})
		res.Mappings = req.Mappings.Suggestions()
		res.UnmappedJSON, res.UnmappedXML = unmapped(res.ParsedJSON, res.ParsedXSD, res.Mappings, req.Mappings.Ignore)
	} else {
		mapped := plan.AutoMap(res.ParsedJSON, res.ParsedXSD, r.opts.Mapper)
		res.Mappings = mapped.Mappings
		res.UnmappedJSON = mapped.UnmappedJSON
		res.UnmappedXML = mapped.UnmappedXML
	}

	log.Debug("stage done", "stage", "map", "mapped", len(res.Mappings), "unmapped", len(res.UnmappedJSON),
		"locked", req.Mappings != nil, "elapsed", time.Since(start))
	start = time.Now()

	template, err := gen.Generate(res.Mappings, res.ParsedXSD, r.opts.Generator)
	if err != nil {
		return nil, fmt.Errorf("generating template: %w", err)
	}

	res.Template = template
	res.LineCount = gen.CountLines(res.Template)

	log.Debug("stage done", "stage", "generate", "lines", res.LineCount, "elapsed", time.Since(start))
	start = time.Now()

	_, syntax := validate.Syntax(res.Template)
	_, vars := validate.Variables(res.Template, res.Mappings)

	checks.Add(syntax...)
	checks.Add(vars...)
	res.Validation = newValidation(checks)

	log.Debug("stage done", "stage", "validate", "errors", len(checks.Errors), "warnings", len(checks.Warnings),
		"elapsed", time.Since(start))

	if r.opts.IncludePreview && req.TestData != nil {
		r.preview(log, req, res)
	}

	res.Success = true

	log.Info("run complete", "mapped", len(res.Mappings), "valid", res.Validation.IsValid)

	return res, nil
}

func (r *Runner) preview(log *slog.Logger, req Request, res *Result) {
	start := time.Now()

	out, err := preview.Render(res.Template, req.TestData)
	if err != nil {
		failed := "Preview failed: " + err.Error()
		res.PreviewOutput = &failed

		log.Warn("preview failed", "error", err)

		return
	}

	res.PreviewOutput = &out

	log.Debug("stage done", "stage", "preview", "bytes", len(out), "elapsed", time.Since(start))

	if r.opts.ValidatePreview {
		_, diags := validate.Output(out, req.XSDSchema)

		var checks diagnostic.Diagnostics

		checks.Add(diags...)
		res.OutputValidation = newValidation(checks)
	}
}

func (r *Runner) fail(log *slog.Logger, res *Result, err error) *Result {
	log.Warn("run failed", "error", err)

	res.Error = err.Error()

	return res
}

// unmapped lists the fields without a mapping and the top-level elements no
// mapping targets. Ignored fields are not reported.
func unmapped(
	form *schema.ParsedJsonSchema,
	xsdSchema *schema.ParsedXsdSchema,
	mappings []schema.MappingSuggestion,
	ignore []string,
) ([]string, []string) {
	fields := make(map[string]bool, len(mappings))
	elements := make(map[string]bool, len(mappings))

	for _, m := range mappings {
		fields[m.JsonFieldID] = true
		elements[m.XmlElementName] = true
	}

	jsonIDs := []string{}

	for _, f := range form.Fields {
		if !fields[f.ID] && !slices.Contains(ignore, f.ID) {
			jsonIDs = append(jsonIDs, f.ID)
		}
	}

	xmlNames := []string{}

	for _, e := range xsdSchema.Elements {
		if e.IsTopLevel() && !elements[e.Name] {
			xmlNames = append(xmlNames, e.Name)
		}
	}

	return jsonIDs, xmlNames
}
