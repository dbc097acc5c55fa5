// Package imports implements the import brace-list rules: newline layout
// and sorted names.
package imports

import "github.com/donaldgifford/importcurly/internal/parser"

// Braces is the brace pair that delimits an import's name list.
type Braces struct {
	Open          *parser.Token
	Close         *parser.Token
	TrailingComma bool // A `,` directly precedes the closing brace.
}

// Valid reports whether both braces were found.
func (b Braces) Valid() bool {
	return b.Open != nil && b.Close != nil
}

// Start returns the byte offset of the opening brace.
func (b Braces) Start() int {
	return b.Open.Start
}

// End returns the byte offset just past the closing brace.
func (b Braces) End() int {
	return b.Close.End
}

// ScanBraces finds the first `{` and last `}` punctuator in tokens.
func ScanBraces(tokens []parser.Token) Braces {
	var b Braces
	for i := range tokens {
		tok := &tokens[i]
		if tok.IsPunctuator("{") && b.Open == nil {
			b.Open = tok
		}
		if tok.IsPunctuator("}") {
			b.TrailingComma = i > 0 && tokens[i-1].IsPunctuator(",")
			b.Close = tok
		}
	}
	return b
}
