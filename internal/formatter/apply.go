package formatter

import (
	"slices"
	"strings"
)

// Apply replaces the range of every fixable finding in src and returns the
// result with the number of fixes applied. Findings must refer to src.
// A fix that reproduces its range unchanged is not applied.
//
// When two ranges overlap the earlier one wins and the later one is left
// for the next pass, once the source has been re-parsed.
func Apply(src string, findings []Finding) (string, int) {
	type edit struct {
		start, end int
		text       string
	}

	var chosen []edit
	lastEnd := -1
	for _, f := range sortedByStart(findings) {
		if !f.HasFix() || f.Start < 0 || f.End > len(src) || f.Start > f.End {
			continue
		}
		if f.Start < lastEnd {
			continue
		}
		text := f.Fix()
		if text == src[f.Start:f.End] {
			continue
		}
		chosen = append(chosen, edit{start: f.Start, end: f.End, text: text})
		lastEnd = f.End
	}

	if len(chosen) == 0 {
		return src, 0
	}

	var b strings.Builder
	b.Grow(len(src))
	pos := 0
	for _, e := range chosen {
		b.WriteString(src[pos:e.start])
		b.WriteString(e.text)
		pos = e.end
	}
	b.WriteString(src[pos:])

	return b.String(), len(chosen)
}

func sortedByStart(findings []Finding) []Finding {
	out := slices.Clone(findings)
	slices.SortStableFunc(out, func(a, b Finding) int {
		return a.Start - b.Start
	})
	return out
}
