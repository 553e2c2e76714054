package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds the diagnostics of one validation pass, split by severity.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors" yaml:"errors"`
	Warnings []Diagnostic `json:"warnings" yaml:"warnings"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Line is the 1-based source line, or 0 when unknown.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Severity of the diagnostic.
	Severity Severity `json:"severity" yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", text)
	}

	return nil
}

// Error builds an error diagnostic.
func Error(code, message string, line int) Diagnostic {
	return Diagnostic{Severity: SeverityError, Code: code, Message: message, Line: line}
}

// Warning builds a warning diagnostic.
func Warning(code, message string, line int) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Line: line}
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, line int) {
	d.Errors = append(d.Errors, Error(code, message, line))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, line int) {
	d.Warnings = append(d.Warnings, Warning(code, message, line))
}

// Add files each diagnostic under its severity.
func (d *Diagnostics) Add(list ...Diagnostic) {
	for _, item := range list {
		if item.IsError() {
			d.Errors = append(d.Errors, item)
		} else {
			d.Warnings = append(d.Warnings, item)
		}
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	out = append(out, d.Errors...)

	return append(out, d.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// CountErrors returns the number of error diagnostics in list.
func CountErrors(list []Diagnostic) int {
	n := 0

	for _, item := range list {
		if item.IsError() {
			n++
		}
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, msg)
	}

	return msg
}
