package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"vmtemplate-generator/internal/mapping"
	"vmtemplate-generator/internal/schema"
)

const filePerm = 0o644

// ErrNotFound is returned when an input file is absent.
var ErrNotFound = errors.New("file not found")

// Source supplies input files by logical type.
type Source interface {
	Read(ft schema.FileType) ([]byte, error)
}

// Sink receives accepted mappings and generated templates.
type Sink interface {
	SaveMappings(rootElement string, mappings []schema.MappingSuggestion) error
	SaveTemplate(template string) error
}

// Layout names the files of a project directory.
type Layout struct {
	JSONSchema string
	XSDSchema  string
	TestData   string
	Mappings   string
	Template   string
}

// DefaultLayout returns the file names used when none are configured.
func DefaultLayout() Layout {
	return Layout{
		JSONSchema: "schema.json",
		XSDSchema:  "schema.xsd",
		TestData:   "data.json",
		Mappings:   "mappings.yaml",
		Template:   "template.vm",
	}
}

// Dir is a Source and Sink over one directory.
type Dir struct {
	fs     billy.Filesystem
	layout Layout
	logger *slog.Logger
}

var (
	_ Source = (*Dir)(nil)
	_ Sink   = (*Dir)(nil)
)

// NewDir creates a Dir over fs. A nil logger falls back to slog.Default().
func NewDir(fs billy.Filesystem, layout Layout, logger *slog.Logger) *Dir {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dir{fs: fs, layout: layout, logger: logger}
}

// OpenDir creates a Dir over the OS directory at path.
func OpenDir(path string, layout Layout, logger *slog.Logger) *Dir {
	return NewDir(osfs.New(path), layout, logger)
}

// Name returns the file name configured for ft.
func (d *Dir) Name(ft schema.FileType) (string, error) {
	switch ft {
	case schema.FileTypeJSONSchema:
		return d.layout.JSONSchema, nil
	case schema.FileTypeXSDSchema:
		return d.layout.XSDSchema, nil
	case schema.FileTypeTestData:
		return d.layout.TestData, nil
	default:
		return "", fmt.Errorf("no file for type %s", ft)
	}
}

// Read returns the contents of the file of type ft.
func (d *Dir) Read(ft schema.FileType) ([]byte, error) {
	name, err := d.Name(ft)
	if err != nil {
		return nil, err
	}

	data, err := d.read(name)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("read input", "type", ft.String(), "file", d.path(name), "bytes", len(data))

	return data, nil
}

// Exists reports whether the file of type ft is present.
func (d *Dir) Exists(ft schema.FileType) bool {
	name, err := d.Name(ft)
	if err != nil {
		return false
	}

	_, err = d.fs.Stat(name)

	return err == nil
}

// LoadMappings reads the accepted mappings file.
func (d *Dir) LoadMappings() (*mapping.MappingFile, error) {
	data, err := d.read(d.layout.Mappings)
	if err != nil {
		return nil, err
	}

	return mapping.Parse(data)
}

// SaveMappings writes mappings made against rootElement. The ignore list of
// an existing mapping file is kept.
func (d *Dir) SaveMappings(rootElement string, mappings []schema.MappingSuggestion) error {
	mf := mapping.FromSuggestions(rootElement, mappings)

	existing, err := d.LoadMappings()

	switch {
	case err == nil:
		mf.Ignore = existing.Ignore
	case !errors.Is(err, ErrNotFound):
		return err
	}

	return d.SaveMappingFile(mf)
}

// SaveMappingFile writes a mapping file.
func (d *Dir) SaveMappingFile(mf *mapping.MappingFile) error {
	data, err := mapping.Marshal(mf)
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}

	if err := d.write(d.layout.Mappings, data); err != nil {
		return err
	}

	d.logger.Info("saved mappings", "file", d.path(d.layout.Mappings), "count", len(mf.Mappings))

	return nil
}

// SaveTemplate writes the generated template.
func (d *Dir) SaveTemplate(template string) error {
	if err := d.write(d.layout.Template, []byte(template)); err != nil {
		return err
	}

	d.logger.Info("saved template", "file", d.path(d.layout.Template), "bytes", len(template))

	return nil
}

func (d *Dir) read(name string) ([]byte, error) {
	data, err := util.ReadFile(d.fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, d.path(name))
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.path(name), err)
	}

	return data, nil
}

func (d *Dir) write(name string, data []byte) error {
	if err := util.WriteFile(d.fs, name, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", d.path(name), err)
	}

	return nil
}

func (d *Dir) path(name string) string {
	return d.fs.Join(d.fs.Root(), name)
}
