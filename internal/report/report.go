// Package report renders findings for humans and tools.
package report

import (
	"fmt"
	"io"
)

// Diagnostic is a finding resolved to a file position.
type Diagnostic struct {
	File      string
	Line      int // 1-indexed.
	Column    int // 1-indexed, in bytes.
	Rule      string
	MessageID string
	Message   string
	Fixable   bool
}

// Reporter writes diagnostics to w.
type Reporter interface {
	Report(w io.Writer, diagnostics []Diagnostic) error
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// New returns the reporter for format.
func New(format string) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
