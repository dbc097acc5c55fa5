package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidOption is wrapped by every validation failure.
var ErrInvalidOption = errors.New("invalid option")

// Validate checks enum values and normalizes legacy spellings in place.
func (c *Config) Validate() error {
	sp := &c.Rules.SortParams

	switch sp.TypeLocation {
	case TypeLocationFirst, TypeLocationLast, TypeLocationIgnore:
	default:
		return invalid("rules.sort_params.type_location", sp.TypeLocation,
			TypeLocationFirst, TypeLocationLast, TypeLocationIgnore)
	}

	switch sp.OrderBy {
	case OrderByAlphabetical, OrderByLetterNumber:
	default:
		return invalid("rules.sort_params.order_by", sp.OrderBy,
			OrderByAlphabetical, OrderByLetterNumber)
	}

	switch sp.SortBy {
	case SortByAsc, SortByDesc:
	case sortByAscLegacy:
		sp.SortBy = SortByAsc
	default:
		return invalid("rules.sort_params.sort_by", sp.SortBy, SortByAsc, SortByDesc)
	}

	if c.Fix.MaxPasses < 0 {
		return fmt.Errorf("%w: fix.max_passes must not be negative, got %d", ErrInvalidOption, c.Fix.MaxPasses)
	}

	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: files.extensions entry %q must start with a dot", ErrInvalidOption, ext)
		}
	}

	for _, pattern := range c.Files.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("%w: files.exclude pattern %q: %v", ErrInvalidOption, pattern, err)
		}
	}

	return nil
}

func invalid(key, got string, allowed ...string) error {
	return fmt.Errorf("%w: %s must be one of %s, got %q",
		ErrInvalidOption, key, strings.Join(allowed, ", "), got)
}
