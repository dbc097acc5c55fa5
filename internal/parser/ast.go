// Package parser turns JavaScript and TypeScript source into the import
// statement nodes and token streams the rules operate on.
package parser

// Kind classifies an imported name as a type-only or runtime reference.
type Kind int

const (
	// KindUnspecified is used by grammars without type-only imports.
	// It groups with KindValue.
	KindUnspecified Kind = iota
	// KindValue is a runtime import.
	KindValue
	// KindType is an inline `type` import.
	KindType
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindType:
		return "type"
	default:
		return "unspecified"
	}
}

// IsType reports whether k is KindType.
func (k Kind) IsType() bool {
	return k == KindType
}

// TokenType classifies a lexical token.
type TokenType int

const (
	// TokenPunctuator is punctuation: { } , ; *.
	TokenPunctuator TokenType = iota
	// TokenKeyword is a reserved word such as import, from, as, type.
	TokenKeyword
	// TokenIdentifier is a name.
	TokenIdentifier
	// TokenString is a complete string literal, quotes included.
	TokenString
	// TokenOther is anything else.
	TokenOther
)

// Token is one lexical token of a statement.
type Token struct {
	Type  TokenType
	Value string
	Start int // Byte offset, inclusive.
	End   int // Byte offset, exclusive.
	Line  int // 1-indexed line of Start.
}

// IsPunctuator reports whether t is the punctuator p.
func (t Token) IsPunctuator(p string) bool {
	return t.Type == TokenPunctuator && t.Value == p
}

// Specifier is one name inside the brace list of an import statement.
type Specifier struct {
	Name      string // Imported name, used for ordering. "default" for `default as x`.
	Local     string // Local binding; equals Name when there is no alias.
	Kind      Kind
	Start     int // Byte offset, inclusive.
	End       int // Byte offset, exclusive.
	StartLine int // 1-indexed.
	EndLine   int // 1-indexed.
	Index     int // Position in source order.
}

// Statement is a single import declaration.
type Statement struct {
	Specifiers []*Specifier // Brace-list names only, in source order.
	Tokens     []Token
	Text       string // Raw source of the whole statement.
	Start      int    // Byte offset, inclusive.
	End        int    // Byte offset, exclusive.
	Line       int    // 1-indexed.
	EndLine    int    // 1-indexed.
	TypeOnly   bool   // `import type {...}`.
}
