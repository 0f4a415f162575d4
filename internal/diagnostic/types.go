package diagnostic

import (
	"errors"
	"strings"

	"walker-generator/internal/common"
	"walker-generator/syntax"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Note is a secondary message anchored at a related span.
type Note struct {
	Message string
	Span    syntax.Span
}

// Diagnostic represents a single message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Span locates the primary subject, when known.
	Span syntax.Span
	// Notes carry related remarks with their own anchors.
	Notes []Note
}

// New builds a diagnostic at the given span.
func New(sev Severity, message string, span syntax.Span) Diagnostic {
	return Diagnostic{Severity: sev, Message: message, Span: span}
}

// FromParseError converts a parse failure into an error diagnostic
// anchored at span.
func FromParseError(err *syntax.ParseError, span syntax.Span) Diagnostic {
	return New(SeverityError, err.Error(), span)
}

// WithNote returns a copy of d carrying an extra note.
func (d Diagnostic) WithNote(message string, span syntax.Span) Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message, Span: span})
	return d
}

// Diagnostics accumulates messages across a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add routes a diagnostic by severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message string, span syntax.Span) {
	d.Add(New(SeverityError, message, span))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message string, span syntax.Span) {
	d.Add(New(SeverityWarning, message, span))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(message string, span syntax.Span) {
	d.Add(New(SeverityInfo, message, span))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil
// if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}
	msgs := make([]string, len(d.Errors))
	for i, diag := range d.Errors {
		msgs[i] = diag.Message
	}
	return errors.New(strings.Join(msgs, "; "))
}
