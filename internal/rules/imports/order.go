package imports

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/parser"
)

// SortOptions controls how imported names are ordered.
type SortOptions struct {
	TypeLocation string // first, last or ignore.
	OrderBy      string // alphabeticalOrder or letterNumber.
	SortBy       string // asc or desc.
	IgnoreCase   bool
}

// SortOptionsFrom converts the rule config into SortOptions.
func SortOptionsFrom(cfg config.SortParamsConfig) SortOptions {
	return SortOptions{
		TypeLocation: cfg.TypeLocation,
		OrderBy:      cfg.OrderBy,
		SortBy:       cfg.SortBy,
		IgnoreCase:   cfg.IgnoreCase,
	}
}

// sortKey is what names are compared by. length is only consulted for
// letterNumber ordering, where text breaks ties.
type sortKey struct {
	length int
	text   string
}

func (o SortOptions) key(s *parser.Specifier) sortKey {
	text := s.Name
	if o.IgnoreCase {
		text = strings.ToLower(text)
	}
	return sortKey{length: utf16Len(s.Name), text: text}
}

// utf16Len counts UTF-16 code units, the length JavaScript reports for a
// string.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// compare orders a and b in the configured direction. A positive result
// means a must come after b.
func (o SortOptions) compare(a, b sortKey) int {
	c := 0
	if o.OrderBy == config.OrderByLetterNumber {
		c = cmp.Compare(a.length, b.length)
	}
	if c == 0 {
		c = strings.Compare(a.text, b.text)
	}
	if o.SortBy == config.SortByDesc {
		return -c
	}
	return c
}

// transition describes moving from one name's kind to the next.
type transition int

const (
	// sameGroup means both names sort in the same block, so keys compare.
	sameGroup transition = iota
	// intoLaterGroup crosses the type/value boundary in the allowed
	// direction. Keys are not compared across it.
	intoLaterGroup
	// intoEarlierGroup crosses the boundary backwards.
	intoEarlierGroup
)

// groupRank returns 0 for names in the leading block and 1 for the
// trailing block. Unspecified kinds group with values.
func (o SortOptions) groupRank(k parser.Kind) int {
	typeFirst := o.TypeLocation == config.TypeLocationFirst
	if k.IsType() == typeFirst {
		return 0
	}
	return 1
}

func (o SortOptions) transition(prev, cur parser.Kind) transition {
	if o.TypeLocation == config.TypeLocationIgnore || prev.IsType() == cur.IsType() {
		return sameGroup
	}
	if o.groupRank(prev) < o.groupRank(cur) {
		return intoLaterGroup
	}
	return intoEarlierGroup
}

// IsSortViolation reports whether specs are out of order under o.
func IsSortViolation(specs []*parser.Specifier, o SortOptions) bool {
	var last *parser.Specifier
	var lastKey sortKey

	for _, s := range specs {
		key := o.key(s)
		if last != nil {
			switch o.transition(last.Kind, s.Kind) {
			case intoEarlierGroup:
				return true
			case sameGroup:
				if o.compare(lastKey, key) > 0 {
					return true
				}
			case intoLaterGroup:
			}
		}
		last, lastKey = s, key
	}
	return false
}

// Order returns specs in the order IsSortViolation accepts. Names with
// equal keys keep their source order.
func (o SortOptions) Order(specs []*parser.Specifier) []*parser.Specifier {
	byKey := func(a, b *parser.Specifier) int {
		return o.compare(o.key(a), o.key(b))
	}

	if o.TypeLocation == config.TypeLocationIgnore {
		out := slices.Clone(specs)
		slices.SortStableFunc(out, byKey)
		return out
	}

	var leading, trailing []*parser.Specifier
	for _, s := range specs {
		if o.groupRank(s.Kind) == 0 {
			leading = append(leading, s)
		} else {
			trailing = append(trailing, s)
		}
	}
	slices.SortStableFunc(leading, byKey)
	slices.SortStableFunc(trailing, byKey)
	return append(leading, trailing...)
}
