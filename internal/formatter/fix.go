package formatter

import (
	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// Result is the outcome of fixing one source file.
type Result struct {
	Output string

	// Initial holds the findings on the unmodified source.
	Initial []Finding

	// Remaining holds the findings still present in Output: violations
	// without a fix, or ones left when the pass limit was reached.
	Remaining []Finding

	Passes  int // Passes that changed the source.
	Applied int // Fixes applied across all passes.
}

// Changed reports whether any fix was applied.
func (r *Result) Changed() bool {
	return r.Applied > 0
}

// Lint parses src and returns the findings without applying any fix.
func Lint(src string, lang parser.Language, cfg *config.Config, rules []Rule) ([]Finding, error) {
	stmts, err := parser.Parse([]byte(src), lang)
	if err != nil {
		return nil, err
	}
	return Run(stmts, &cfg.Rules, rules), nil
}

// Fix repeatedly parses, checks and applies fixes until the source stops
// changing or cfg.Fix.MaxPasses passes have modified it. Rules whose fixes
// touch the same statement converge over several passes.
func Fix(src string, lang parser.Language, cfg *config.Config, rules []Rule) (*Result, error) {
	res := &Result{Output: src}

	for pass := 0; ; pass++ {
		findings, err := Lint(res.Output, lang, cfg, rules)
		if err != nil {
			return nil, err
		}
		if pass == 0 {
			res.Initial = findings
		}

		if pass >= cfg.Fix.MaxPasses {
			res.Remaining = findings
			return res, nil
		}

		next, n := Apply(res.Output, findings)
		if n == 0 {
			res.Remaining = findings
			return res, nil
		}

		res.Output = next
		res.Applied += n
		res.Passes++
	}
}
