package style

import (
	"reflect"
	"testing"

	pr "github.com/stormlicht/style/css/properties"
)

func TestDefaultMatchesLoweredInitialValues(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)

	borderColors := map[pr.KnownProp]bool{
		pr.PBorderTopColor: true, pr.PBorderRightColor: true,
		pr.PBorderBottomColor: true, pr.PBorderLeftColor: true,
	}
	for prop, specified := range pr.InitialValues {
		want := Lower(prop, specified, ctx, 16)
		if borderColors[prop] {
			// currentColor resolves against the element's own computed
			// color even at default construction; a root element's
			// default color is opaque black, so the border colors are
			// black too, not the unresolved currentColor marker.
			want = pr.NewColor(0, 0, 0, 1)
		}
		got, ok := cs.Get(prop)
		if !ok {
			t.Fatalf("%s: no computed value", prop.Name())
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: got %#v want %#v", prop.Name(), got, want)
		}
	}
}

func TestInheritFromSharesInheritedGroupUntilFirstWrite(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)
	child := InheritFrom(parent, ctx)

	if child.inherited != parent.inherited {
		t.Fatalf("expected child to alias parent's inherited group before any write")
	}

	child.SetLonghand(pr.PColor, pr.NoCSSWideKeyword, pr.NewColor(1, 0, 0, 1), parent, ctx)

	if child.inherited == parent.inherited {
		t.Fatalf("expected child's inherited group to be cloned after its first write")
	}
	if parent.Color() == pr.NewColor(1, 0, 0, 1) {
		t.Fatalf("mutating the child must not affect the parent")
	}
}

func TestNonInheritedGroupNeverShared(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)
	child := InheritFrom(parent, ctx)

	if child.nonInherited == parent.nonInherited {
		t.Fatalf("non-inherited groups must never be shared across InheritFrom")
	}

	child.SetLonghand(pr.PDisplay, pr.NoCSSWideKeyword, pr.DisplayBlock, parent, ctx)
	got, _ := parent.Get(pr.PDisplay)
	if got == pr.DisplayBlock {
		t.Fatalf("mutating the child's non-inherited group must not affect the parent")
	}
}

func TestSetLonghandInheritCopiesParentComputedValue(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)
	parent.SetLonghand(pr.PColor, pr.NoCSSWideKeyword, pr.NewColor(0, 1, 0, 1), nil, ctx)

	child := InheritFrom(parent, ctx)
	child.SetLonghand(pr.PColor, pr.Inherit, nil, parent, ctx)

	if child.Color() != pr.NewColor(0, 1, 0, 1) {
		t.Fatalf("got %#v", child.Color())
	}
}

func TestSetLonghandInitialResetsToRegistryDefault(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	cs.SetLonghand(pr.PColor, pr.NoCSSWideKeyword, pr.NewColor(0, 1, 0, 1), nil, ctx)
	cs.SetLonghand(pr.PColor, pr.Initial, nil, nil, ctx)

	want := Lower(pr.PColor, pr.InitialValues[pr.PColor], ctx, cs.FontSizePx())
	if cs.Color() != want {
		t.Fatalf("got %#v want %#v", cs.Color(), want)
	}
}

func TestCurrentColorResolvesAgainstOwnColor(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	cs.SetLonghand(pr.PColor, pr.NoCSSWideKeyword, pr.NewColor(0, 0, 1, 1), nil, ctx)
	cs.SetLonghand(pr.PBorderTopColor, pr.NoCSSWideKeyword, pr.CurrentColor, nil, ctx)

	if cs.BorderColor(pr.PBorderTopColor) != pr.NewColor(0, 0, 1, 1) {
		t.Fatalf("got %#v", cs.BorderColor(pr.PBorderTopColor))
	}
}

func TestBorderWidthsZeroedWhenStyleIsNoneOrHidden(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	cs := Default(ctx)
	cs.SetLonghand(pr.PBorderTopWidth, pr.NoCSSWideKeyword, pr.LineWidth{Keyword: pr.Thick}, nil, ctx)
	cs.SetLonghand(pr.PBorderTopStyle, pr.NoCSSWideKeyword, pr.LineSolid, nil, ctx)
	cs.SetLonghand(pr.PBorderRightWidth, pr.NoCSSWideKeyword, pr.LineWidth{Keyword: pr.Thick}, nil, ctx)
	cs.SetLonghand(pr.PBorderRightStyle, pr.NoCSSWideKeyword, pr.LineNone, nil, ctx)

	widths := cs.BorderWidths()
	if widths.Top == 0 {
		t.Fatalf("expected a non-zero used width for a solid border")
	}
	if widths.Right != 0 {
		t.Fatalf("expected border-right-style: none to force a zero used width, got %v", widths.Right)
	}
}

func TestFontSizeEmResolvesAgainstParentFontSize(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)

	child := InheritFrom(parent, ctx.ForChild(parent.FontSizePx(), parent.FontWeightNumber()))
	child.SetLonghand(pr.PFontSize, pr.NoCSSWideKeyword, pr.FontSize{IsLength: true, Percentage: pr.NotPerc[pr.Length](pr.Length{Value: 2, Unit: pr.Em})}, parent, ctx)

	if child.FontSizePx() != 32 {
		t.Fatalf("expected 2em against a 16px parent to resolve to 32px, got %v", child.FontSizePx())
	}
}

func TestBolderAndLighterRelativeToParentWeight(t *testing.T) {
	ctx := DefaultContext(1024, 768)
	parent := Default(ctx)
	parent.SetLonghand(pr.PFontWeight, pr.NoCSSWideKeyword, pr.FontWeight{Keyword: pr.FontWeightNumber, Number: 500}, nil, ctx)

	childCtx := ctx.ForChild(parent.FontSizePx(), parent.FontWeightNumber())
	child := InheritFrom(parent, childCtx)
	child.SetLonghand(pr.PFontWeight, pr.NoCSSWideKeyword, pr.FontWeight{Keyword: pr.FontWeightBolder}, parent, childCtx)

	if child.FontWeightNumber() != 700 {
		t.Fatalf("expected bolder than 500 to resolve to 700, got %v", child.FontWeightNumber())
	}
}
