package report

import (
	"fmt"
	"io"
)

// TextReporter prints one line per diagnostic and a summary.
type TextReporter struct{}

// Report writes `file:line:col: message [rule]` lines.
func (r *TextReporter) Report(w io.Writer, diagnostics []Diagnostic) error {
	fixable := 0
	for _, d := range diagnostics {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s]\n", d.File, d.Line, d.Column, d.Message, d.Rule); err != nil {
			return err
		}
		if d.Fixable {
			fixable++
		}
	}

	if len(diagnostics) > 0 {
		_, err := fmt.Fprintf(w, "\n%d issue(s) found, %d fixable.\n", len(diagnostics), fixable)
		return err
	}
	return nil
}
