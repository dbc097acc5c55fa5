package formatter

import (
	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// Rule checks one import statement at a time. Rules are stateless and
// applied in registered order.
type Rule interface {
	// Name returns the rule name used on the command line and in output
	// (e.g., "sort-params").
	Name() string

	// Description is a one-line summary for `importcurly rules`.
	Description() string

	// Enabled reports whether cfg turns the rule on.
	Enabled(cfg *config.RulesConfig) bool

	// Check inspects stmt and calls report at most once per violation.
	// It must not mutate stmt.
	Check(stmt *parser.Statement, cfg *config.RulesConfig, report ReportFunc)
}

// ReportFunc receives findings from a rule.
type ReportFunc func(Finding)

// Finding is a single violation anchored to a byte range of the source.
type Finding struct {
	Rule      string
	MessageID string
	Message   string
	Start     int // Byte offset, inclusive.
	End       int // Byte offset, exclusive.

	// Fix returns the replacement for [Start, End). It is nil when the
	// violation cannot be fixed automatically. It has no side effects and
	// may never be called.
	Fix func() string
}

// HasFix reports whether the finding carries a fix.
func (f Finding) HasFix() bool {
	return f.Fix != nil
}
