package properties

import (
	"testing"

	"github.com/stormlicht/style/css/properties/keywords"
)

func TestAllLonghandsOfFourSides(t *testing.T) {
	got := AllLonghandsOf(SMargin)
	want := []KnownProp{PMarginTop, PMarginRight, PMarginBottom, PMarginLeft}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestAllLonghandsOfBorderSide(t *testing.T) {
	got := AllLonghandsOf(SBorderTop)
	want := []KnownProp{PBorderTopColor, PBorderTopStyle, PBorderTopWidth}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestAllLonghandsOfBorderCoversAllFourSides(t *testing.T) {
	got := AllLonghandsOf(SBorder)
	if len(got) != 12 {
		t.Fatalf("expected 12 longhands, got %d: %v", len(got), got)
	}
	seen := map[KnownProp]bool{}
	for _, p := range got {
		seen[p] = true
	}
	for _, side := range borderSides {
		if !seen[side.Color] || !seen[side.Style] || !seen[side.Width] {
			t.Fatalf("missing a side's longhand in %v", got)
		}
	}
}

func TestPropsFromNamesCoversEveryLonghand(t *testing.T) {
	for prop, name := range longhandNames {
		got, ok := PropsFromNames[mustLookup(t, name)]
		if !ok || got != prop {
			t.Fatalf("%s: not resolvable through PropsFromNames", name)
		}
	}
}

func TestShorthandsFromNamesCoversEveryShorthand(t *testing.T) {
	for sh, name := range shorthandNames {
		got, ok := ShorthandsFromNames[mustLookup(t, name)]
		if !ok || got != sh {
			t.Fatalf("%s: not resolvable through ShorthandsFromNames", name)
		}
	}
}

func mustLookup(t *testing.T, name string) keywords.Name {
	t.Helper()
	n, ok := keywords.Lookup(name)
	if !ok {
		t.Fatalf("%q was never interned", name)
	}
	return n
}
