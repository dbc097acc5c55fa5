package rules

import (
	"github.com/donaldgifford/importcurly/internal/rules/imports"
)

func init() {
	// Both rules replace the same brace range; the first one registered
	// wins each fix pass.
	Register(&imports.Newline{})
	Register(&imports.SortParams{})
}
