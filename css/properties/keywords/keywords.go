// Package keywords implements the process-wide interner for CSS
// property and keyword identifiers (spec.md §5, §9 "interner
// lifecycle"). Interning is built once at init() time from a static
// table and never torn down; lookups are read-only and therefore safe
// to call from multiple goroutines computing disjoint element
// subtrees concurrently.
package keywords

import "golang.org/x/text/cases"

// Name is an interned, case-folded CSS identifier (a property name or
// a keyword value). Comparing two Names is a plain integer
// comparison, giving the O(1) equality required by spec.md §4.2.
type Name uint32

var foldCase = cases.Fold()

// Fold lowercases s the way CSS requires for ASCII identifiers, using
// golang.org/x/text's Unicode-aware case folder rather than
// strings.ToLower so that non-ASCII keyword spellings fold correctly
// too.
func Fold(s string) string { return foldCase.String(s) }

var (
	table   = map[string]Name{}
	byIndex []string
)

// Intern returns the Name for s, creating one on first use. Intern is
// not synchronized; in this module it is called only during package
// initialization (package properties' init interns every longhand and
// shorthand name once); spec.md's interner lifecycle note makes
// dynamic interning optional, and this module does not need it at
// request time.
func Intern(s string) Name {
	folded := Fold(s)
	if n, ok := table[folded]; ok {
		return n
	}
	n := Name(len(byIndex))
	byIndex = append(byIndex, folded)
	table[folded] = n
	return n
}

// Lookup returns the Name already interned for s, without creating a
// new entry — the read-only path used during parsing.
func Lookup(s string) (Name, bool) {
	n, ok := table[Fold(s)]
	return n, ok
}

// String returns the canonical (folded) spelling of n.
func (n Name) String() string {
	if int(n) < len(byIndex) {
		return byIndex[n]
	}
	return "?"
}
