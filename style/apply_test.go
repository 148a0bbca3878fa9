package style

import (
	"bytes"
	"log"
	"strings"
	"testing"

	pa "github.com/stormlicht/style/css/parser"
	pr "github.com/stormlicht/style/css/properties"
	"github.com/stormlicht/style/stylelog"
)

// captureWarnings redirects stylelog.Warning's output for the duration
// of one test, returning a function that restores it and yields the
// captured lines.
func captureWarnings(t *testing.T) func() []string {
	t.Helper()
	var buf bytes.Buffer
	prev := stylelog.Warning
	stylelog.Warning = log.New(&buf, "", 0)
	return func() []string {
		stylelog.Warning = prev
		var lines []string
		for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			if l != "" {
				lines = append(lines, l)
			}
		}
		return lines
	}
}

func declsOf(t *testing.T, css string) []pa.Declaration {
	t.Helper()
	decls, errs := pa.ParseDeclarationListString(css)
	if len(errs) != 0 {
		t.Fatalf("%s: unexpected parse errors: %v", css, errs)
	}
	return decls
}

func TestApplyMarginShorthandThenLonghandOverride(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	ApplyDeclarations(cs, nil, declsOf(t, "margin: 10px 20px; margin-left: 5px"), ctx)

	top, _ := cs.Get(pr.PMarginTop)
	right, _ := cs.Get(pr.PMarginRight)
	left, _ := cs.Get(pr.PMarginLeft)

	wantVert := pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: 10, Unit: pr.Px}))
	wantRight := pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: 20, Unit: pr.Px}))
	wantLeft := pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: 5, Unit: pr.Px}))

	if top != wantVert {
		t.Fatalf("margin-top: got %#v want %#v", top, wantVert)
	}
	if right != wantRight {
		t.Fatalf("margin-right: got %#v want %#v", right, wantRight)
	}
	if left != wantLeft {
		t.Fatalf("margin-left (later override): got %#v want %#v", left, wantLeft)
	}
}

func TestApplyFontSizeResolvesBeforeSiblingEmProperties(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	// margin-left is declared before font-size; font-size must still be
	// resolved first so this element's own 1em margin uses its own,
	// just-computed 32px font size rather than the inherited 16px default.
	ApplyDeclarations(cs, nil, declsOf(t, "margin-left: 1em; font-size: 2em"), ctx)

	if cs.FontSizePx() != 32 {
		t.Fatalf("expected font-size: 2em against a 16px parent to resolve to 32px, got %v", cs.FontSizePx())
	}
	left, _ := cs.Get(pr.PMarginLeft)
	want := pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: 32, Unit: pr.Px}))
	if left != want {
		t.Fatalf("margin-left: got %#v want %#v", left, want)
	}
}

func TestApplyColorInherit(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)
	ApplyDeclarations(parent, nil, declsOf(t, "color: #00ff00"), ctx)

	child := InheritFrom(parent, ctx)
	ApplyDeclarations(child, parent, declsOf(t, "color: inherit"), ctx)

	if child.Color() != pr.NewColor(0, 1, 0, 1) {
		t.Fatalf("got %#v", child.Color())
	}
}

func TestApplyDropsInvalidDeclarationAndContinues(t *testing.T) {
	restore := captureWarnings(t)
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	ApplyDeclarations(cs, nil, declsOf(t, "background-color: not-a-color; color: red"), ctx)
	logs := restore()

	if len(logs) != 1 {
		t.Fatalf("expected exactly one warning, got %v", logs)
	}
	if !strings.Contains(logs[0], "background-color") {
		t.Fatalf("expected the warning to name the dropped declaration, got %q", logs[0])
	}
	if cs.Color() != pr.NewColor(1, 0, 0, 1) {
		t.Fatalf("the rest of the block must still apply: got %#v", cs.Color())
	}
}

func TestApplyBorderShorthandThenSideOverride(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	ApplyDeclarations(cs, nil, declsOf(t, "border: 2px solid red; border-left-color: blue"), ctx)

	if cs.BorderColor(pr.PBorderTopColor) != pr.NewColor(1, 0, 0, 1) {
		t.Fatalf("border-top-color: got %#v", cs.BorderColor(pr.PBorderTopColor))
	}
	if cs.BorderColor(pr.PBorderLeftColor) != pr.NewColor(0, 0, 1, 1) {
		t.Fatalf("border-left-color override: got %#v", cs.BorderColor(pr.PBorderLeftColor))
	}
	widths := cs.BorderWidths()
	if widths.Top != 2 || widths.Left != 2 {
		t.Fatalf("border widths unaffected by the color override: got %#v", widths)
	}
}
