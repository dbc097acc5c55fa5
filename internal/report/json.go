package report

import (
	"encoding/json"
	"io"
)

// JSONReporter writes diagnostics as an indented JSON array.
type JSONReporter struct{}

type jsonDiagnostic struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Rule      string `json:"rule"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
	Fixable   bool   `json:"fixable"`
}

// Report encodes diagnostics. An empty input produces `[]`.
func (r *JSONReporter) Report(w io.Writer, diagnostics []Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, jsonDiagnostic(d))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
