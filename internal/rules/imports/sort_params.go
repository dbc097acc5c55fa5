package imports

import (
	"strings"

	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/formatter"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// SortParamsMessageID identifies sort-params findings.
const SortParamsMessageID = "import-sort-params"

// SortParams keeps the names inside one import's braces sorted.
type SortParams struct{}

// Name returns the rule name.
func (r *SortParams) Name() string {
	return "sort-params"
}

// Description returns a one-line summary of the rule.
func (r *SortParams) Description() string {
	return "imported names sorted by name or length, optionally grouping type imports"
}

// Enabled reports whether the rule is on.
func (r *SortParams) Enabled(cfg *config.RulesConfig) bool {
	return cfg.SortParams.Enabled
}

// Check reports the brace list of stmt when its names are out of order.
func (r *SortParams) Check(stmt *parser.Statement, cfg *config.RulesConfig, report formatter.ReportFunc) {
	opts := SortOptionsFrom(cfg.SortParams)
	if !IsSortViolation(stmt.Specifiers, opts) {
		return
	}

	braces := ScanBraces(stmt.Tokens)
	if !braces.Valid() {
		return
	}

	f := formatter.Finding{
		Rule:      r.Name(),
		MessageID: SortParamsMessageID,
		Message:   "Run autofix to sort imported names",
		Start:     braces.Start(),
		End:       braces.End(),
	}
	if plan, ok := planSort(stmt.Specifiers, stmt.Text, braces.TrailingComma); ok {
		f.Fix = func() string {
			return plan.render(opts)
		}
	}
	report(f)
}

// sortPlan holds the brace list split into per-name source slices.
type sortPlan struct {
	specs    []*parser.Specifier
	params   []string // Verbatim text of each name, indexed by Specifier.Index.
	trailing string   // Text after the trailing comma.
	hasTrail bool
}

// planSort splits the brace list of stmtText on commas. It fails when the
// pieces do not line up one-to-one with specs, e.g. a comma inside a
// comment.
func planSort(specs []*parser.Specifier, stmtText string, trailingComma bool) (*sortPlan, bool) {
	interior, ok := braceInterior(stmtText)
	if !ok {
		return nil, false
	}

	p := &sortPlan{
		specs:    specs,
		params:   strings.Split(interior, ","),
		hasTrail: trailingComma,
	}
	if trailingComma {
		last := len(p.params) - 1
		p.trailing = p.params[last]
		p.params = p.params[:last]
	}
	if len(p.params) != len(specs) {
		return nil, false
	}
	for _, s := range specs {
		if s.Index < 0 || s.Index >= len(p.params) {
			return nil, false
		}
	}
	return p, true
}

func (p *sortPlan) render(opts SortOptions) string {
	out := make([]string, 0, len(p.params)+1)
	for _, s := range opts.Order(p.specs) {
		out = append(out, p.params[s.Index])
	}
	if p.hasTrail {
		out = append(out, p.trailing)
	}
	return "{" + strings.Join(out, ",") + "}"
}

// RewriteSorted returns the brace list of stmtText with its names
// reordered under opts. Each name keeps its original text and surrounding
// whitespace. ok is false when the list cannot be split safely.
func RewriteSorted(specs []*parser.Specifier, stmtText string, trailingComma bool, opts SortOptions) (string, bool) {
	plan, ok := planSort(specs, stmtText, trailingComma)
	if !ok {
		return "", false
	}
	return plan.render(opts), true
}
