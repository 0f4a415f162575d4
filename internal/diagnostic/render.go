package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	severityColors = map[Severity]*color.Color{
		SeverityInfo:    color.New(color.FgCyan),
		SeverityWarning: color.New(color.FgYellow),
		SeverityError:   color.New(color.FgRed, color.Bold),
	}
	noteColor = color.New(color.FgBlue)
)

// Render writes one diagnostic in compiler style:
//
//	error: expected 2 element(s), got 3 at 1:10-1:20
//	  note: because of this at 1:1-1:7
func Render(w io.Writer, d Diagnostic) {
	label := d.Severity.String()
	if c, ok := severityColors[d.Severity]; ok {
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%s: %s", label, d.Message)
	if !d.Span.IsZero() {
		fmt.Fprintf(w, " at %s", d.Span)
	}
	fmt.Fprintln(w)

	for _, n := range d.Notes {
		fmt.Fprintf(w, "  %s: %s", noteColor.Sprint("note"), n.Message)
		if !n.Span.IsZero() {
			fmt.Fprintf(w, " at %s", n.Span)
		}
		fmt.Fprintln(w)
	}
}

// RenderAll writes every accumulated diagnostic, errors first.
func RenderAll(w io.Writer, d *Diagnostics) {
	for _, diag := range d.Errors {
		Render(w, diag)
	}
	for _, diag := range d.Warnings {
		Render(w, diag)
	}
	for _, diag := range d.Infos {
		Render(w, diag)
	}
}
