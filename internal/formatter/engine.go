// Package formatter runs rules over parsed import statements and applies
// their fixes to source text.
package formatter

import (
	"slices"

	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// Run checks every statement with every enabled rule and returns the
// findings ordered by position, then by rule order.
func Run(stmts []*parser.Statement, cfg *config.RulesConfig, rules []Rule) []Finding {
	var findings []Finding
	report := func(f Finding) {
		findings = append(findings, f)
	}

	for _, stmt := range stmts {
		for _, rule := range rules {
			if !rule.Enabled(cfg) {
				continue
			}
			rule.Check(stmt, cfg, report)
		}
	}

	slices.SortStableFunc(findings, func(a, b Finding) int {
		return a.Start - b.Start
	})
	return findings
}
