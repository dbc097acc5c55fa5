package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrUnsupportedLanguage is returned for files that are not JavaScript or
// TypeScript.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects the grammar and whether inline `type` imports exist.
type Language int

const (
	// LangTypeScript covers .ts, .mts and .cts files.
	LangTypeScript Language = iota
	// LangTSX covers .tsx files.
	LangTSX
	// LangJavaScript covers .js, .mjs and .cjs files.
	LangJavaScript
	// LangJSX covers .jsx files.
	LangJSX
)

var extLanguages = map[string]Language{
	".ts":  LangTypeScript,
	".mts": LangTypeScript,
	".cts": LangTypeScript,
	".tsx": LangTSX,
	".js":  LangJavaScript,
	".mjs": LangJavaScript,
	".cjs": LangJavaScript,
	".jsx": LangJSX,
}

// LanguageFor picks the language from a file extension.
func LanguageFor(path string) (Language, error) {
	lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}
	return lang, nil
}

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LangTypeScript:
		return "typescript"
	case LangTSX:
		return "tsx"
	case LangJavaScript:
		return "javascript"
	case LangJSX:
		return "jsx"
	default:
		return "unknown"
	}
}

// typed reports whether the language distinguishes type and value imports.
func (l Language) typed() bool {
	return l == LangTypeScript || l == LangTSX
}

// grammar returns the tree-sitter grammar. The TypeScript grammars are a
// superset of JavaScript, so plain JS files are parsed with them too.
func (l Language) grammar() *sitter.Language {
	if l == LangTSX || l == LangJSX {
		return sitter.NewLanguage(typescript.LanguageTSX())
	}
	return sitter.NewLanguage(typescript.LanguageTypescript())
}

// Parse extracts every import statement from src. Statements that contain
// syntax errors are skipped.
func Parse(src []byte, lang Language) ([]*Statement, error) {
	p := sitter.NewParser()
	defer p.Close()

	if err := p.SetLanguage(lang.grammar()); err != nil {
		return nil, fmt.Errorf("setting %s grammar: %w", lang, err)
	}

	tree := p.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", lang)
	}
	defer tree.Close()

	lines := newLineIndex(string(src))
	var stmts []*Statement
	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		if n.Kind() != "import_statement" {
			return true
		}
		if !n.HasError() {
			stmts = append(stmts, buildStatement(n, src, lines, lang))
		}
		return false
	})
	return stmts, nil
}

func buildStatement(n *sitter.Node, src []byte, lines lineIndex, lang Language) *Statement {
	start, end := int(n.StartByte()), int(n.EndByte())
	stmt := &Statement{
		Text:    string(src[start:end]),
		Start:   start,
		End:     end,
		Line:    lines.line(start),
		EndLine: lines.last(start, end),
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(uint(i))
		switch {
		case child.Kind() == "type" && !child.IsNamed():
			stmt.TypeOnly = true
		case child.Kind() == "import_clause":
			if named := findChildByType(child, "named_imports"); named != nil {
				stmt.Specifiers = buildSpecifiers(named, src, lines, lang)
			}
		}
	}

	stmt.Tokens = collectTokens(n, src, lines)
	return stmt
}

func buildSpecifiers(named *sitter.Node, src []byte, lines lineIndex, lang Language) []*Specifier {
	var specs []*Specifier
	for _, n := range findChildrenByType(named, "import_specifier") {
		start, end := int(n.StartByte()), int(n.EndByte())
		spec := &Specifier{
			Start:     start,
			End:       end,
			StartLine: lines.line(start),
			EndLine:   lines.last(start, end),
			Index:     len(specs),
		}

		nameNode := n.ChildByFieldName("name")
		if nameNode == nil && n.NamedChildCount() > 0 {
			nameNode = n.NamedChild(0)
		}
		spec.Name = extractNodeText(nameNode, src)
		spec.Local = spec.Name
		if alias := n.ChildByFieldName("alias"); alias != nil {
			spec.Local = extractNodeText(alias, src)
		}

		if lang.typed() {
			spec.Kind = KindValue
			if kw := findChildByType(n, "type"); kw != nil && !kw.IsNamed() {
				spec.Kind = KindType
			}
		}

		specs = append(specs, spec)
	}
	return specs
}

// collectTokens flattens the leaves of n into a token stream. String
// literals are kept whole and comments are dropped.
func collectTokens(n *sitter.Node, src []byte, lines lineIndex) []Token {
	var tokens []Token
	walkTree(n, func(c *sitter.Node) bool {
		kind := c.Kind()
		if kind == "comment" {
			return false
		}
		if kind != "string" && c.ChildCount() > 0 {
			return true
		}
		start, end := int(c.StartByte()), int(c.EndByte())
		if start == end {
			return false
		}
		tokens = append(tokens, Token{
			Type:  tokenType(c, kind),
			Value: string(src[start:end]),
			Start: start,
			End:   end,
			Line:  lines.line(start),
		})
		return false
	})
	return tokens
}

func tokenType(n *sitter.Node, kind string) TokenType {
	if n.IsNamed() {
		switch kind {
		case "identifier":
			return TokenIdentifier
		case "string":
			return TokenString
		default:
			return TokenOther
		}
	}
	for _, r := range kind {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return TokenPunctuator
		}
	}
	return TokenKeyword
}
