package imports

import (
	"strings"

	"github.com/donaldgifford/importcurly/internal/parser"
)

// specsFromList builds specifiers from the brace list of stmtText without
// a real parser. Each comma-separated element is one name; a leading
// `type ` marks KindType when typed is set. All names sit on line 1.
func specsFromList(stmtText string, typed bool) []*parser.Specifier {
	interior, ok := braceInterior(stmtText)
	if !ok {
		return nil
	}

	var specs []*parser.Specifier
	for _, part := range strings.Split(interior, ",") {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}

		spec := &parser.Specifier{Index: len(specs), StartLine: 1, EndLine: 1}
		if typed {
			spec.Kind = parser.KindValue
			if rest, ok := strings.CutPrefix(part, "type "); ok {
				spec.Kind = parser.KindType
				part = rest
			}
		}
		spec.Name, spec.Local, _ = strings.Cut(part, " as ")
		if spec.Local == "" {
			spec.Local = spec.Name
		}
		specs = append(specs, spec)
	}
	return specs
}

// spec builds a specifier that starts and ends on line.
func spec(name string, kind parser.Kind, line int) *parser.Specifier {
	return &parser.Specifier{Name: name, Local: name, Kind: kind, StartLine: line, EndLine: line}
}
