package schema

//go:generate go tool stringer -type=FileType -linecomment -output=filetype_string.go

// FileType identifies the logical kind of an input file supplied by the file
// source collaborator.
type FileType int

const (
	FileTypeUnknown    FileType = iota // UNKNOWN
	FileTypeJSONSchema                 // JSON_SCHEMA
	FileTypeXSDSchema                  // XSD_SCHEMA
	FileTypeTestData                   // TEST_DATA
)
