package style

import (
	pa "github.com/stormlicht/style/css/parser"
	"github.com/stormlicht/style/css/properties/keywords"
	"github.com/stormlicht/style/css/validation"
	"github.com/stormlicht/style/stylelog"
)

// ApplyDeclarations resolves a declaration block (spec.md §4.1-§4.5
// end to end) into cs, which must already exist (built by Default or
// InheritFrom). Declarations are applied in the order given — the
// strict-declared-order resolution of DESIGN.md's Open Question (i) —
// except that any `font-size` declaration is always resolved first,
// since every other longhand's `em` unit must resolve against this
// element's *own* computed font size, not the
// value it happens to have while still at its inherited default.
// Declarations that fail to parse are dropped with a logged warning,
// per spec.md §7's local-recovery error policy; parsing continues
// with the next declaration.
func ApplyDeclarations(cs *ComputedStyle, parent *ComputedStyle, decls []pa.Declaration, ctx Context) {
	stylelog.Progress.Printf("resolving %d declaration(s)", len(decls))
	ordered := prioritizeFontSize(decls)
	for _, decl := range ordered {
		longhands, err := validation.ParseDeclaration(decl.Name, decl.Value)
		if err != nil {
			warnUnknownProperty(decl.Name, err)
			continue
		}
		for prop, dv := range longhands {
			cs.SetLonghand(prop, dv.Keyword, dv.Value, parent, ctx)
		}
	}
}

func prioritizeFontSize(decls []pa.Declaration) []pa.Declaration {
	out := make([]pa.Declaration, 0, len(decls))
	var fontSize []pa.Declaration
	for _, d := range decls {
		if keywords.Fold(d.Name) == "font-size" {
			fontSize = append(fontSize, d)
			continue
		}
		out = append(out, d)
	}
	return append(fontSize, out...)
}
