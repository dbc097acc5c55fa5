package imports

import (
	"strings"

	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/formatter"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// NewlineMessageID identifies newline findings.
const NewlineMessageID = "import-curly-newline"

// Newline puts each imported name on its own line once a statement has
// at least Count names.
type Newline struct{}

// Name returns the rule name.
func (r *Newline) Name() string {
	return "newline"
}

// Description returns a one-line summary of the rule.
func (r *Newline) Description() string {
	return "one imported name per line, braces on their own lines"
}

// Enabled reports whether the rule is on. A count of zero or less
// disables it.
func (r *Newline) Enabled(cfg *config.RulesConfig) bool {
	return cfg.Newline.Enabled && cfg.Newline.Count > 0
}

// Check reports the brace list of stmt when its layout is not one name
// per line.
func (r *Newline) Check(stmt *parser.Statement, cfg *config.RulesConfig, report formatter.ReportFunc) {
	specs := stmt.Specifiers
	if cfg.Newline.Count <= 0 || len(specs) == 0 || len(specs) < cfg.Newline.Count {
		return
	}

	braces := ScanBraces(stmt.Tokens)
	if !braces.Valid() || !IsNewlineViolation(specs, braces.Open.Line, braces.Close.Line) {
		return
	}

	f := formatter.Finding{
		Rule:      r.Name(),
		MessageID: NewlineMessageID,
		Message:   "Run autofix to put each imported name on its own line",
		Start:     braces.Start(),
		End:       braces.End(),
	}
	if _, ok := braceInterior(stmt.Text); ok {
		text, trailing := stmt.Text, braces.TrailingComma
		f.Fix = func() string {
			return RewriteNewline(text, trailing)
		}
	}
	report(f)
}

// IsNewlineViolation reports whether specs break the one-per-line layout
// between braces opening on openLine and closing on closeLine.
func IsNewlineViolation(specs []*parser.Specifier, openLine, closeLine int) bool {
	if len(specs) == 0 {
		return false
	}

	lastLine := openLine
	for _, s := range specs {
		// `A \nas AA` must be joined first.
		if s.StartLine != s.EndLine {
			return true
		}
		// `A, B` or `{A`.
		if s.StartLine == lastLine {
			return true
		}
		lastLine = s.StartLine
	}

	// `B}`.
	return specs[len(specs)-1].StartLine == closeLine
}

// RewriteNewline returns the brace list of stmtText laid out one name per
// line with two-space indentation, using the statement's own line ending.
// A trailing comma is kept and then closes directly with `}`.
func RewriteNewline(stmtText string, trailingComma bool) string {
	eol := detectEOL(stmtText)
	interior, _ := braceInterior(stmtText)
	interior = strings.NewReplacer("\r", "", "\n", "").Replace(interior)

	var params []string
	for _, p := range strings.Split(interior, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		params = append(params, "  "+p)
	}
	if trailingComma {
		params = append(params, "")
	}

	var b strings.Builder
	b.WriteString("{")
	b.WriteString(eol)
	b.WriteString(strings.Join(params, ","+eol))
	if !trailingComma {
		b.WriteString(eol)
	}
	b.WriteString("}")
	return b.String()
}

// detectEOL returns the first line-ending style found in s: CRLF, then
// CR, else LF.
func detectEOL(s string) string {
	switch {
	case strings.Contains(s, "\r\n"):
		return "\r\n"
	case strings.Contains(s, "\r"):
		return "\r"
	default:
		return "\n"
	}
}

// braceInterior returns the text between the first `{` and the first `}`.
func braceInterior(s string) (string, bool) {
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return "", false
	}
	end := strings.IndexByte(s[open:], '}')
	if end < 0 {
		return "", false
	}
	return s[open+1 : open+end], true
}
