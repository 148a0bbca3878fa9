package validation

import (
	"reflect"
	"testing"

	pa "github.com/stormlicht/style/css/parser"
	pr "github.com/stormlicht/style/css/properties"
)

func expand(t *testing.T, sh pr.Shorthand, value string) map[pr.KnownProp]pr.SpecifiedValue {
	t.Helper()
	got, err := ExpandShorthand(sh, pa.Tokenize([]byte(value), true))
	if err != nil {
		t.Fatalf("%s: %s: unexpected error: %v", sh.Name(), value, err)
	}
	return got
}

func assertExpandInvalid(t *testing.T, sh pr.Shorthand, value string) {
	t.Helper()
	_, err := ExpandShorthand(sh, pa.Tokenize([]byte(value), true))
	if err == nil {
		t.Fatalf("%s: %s: expected an error, got none", sh.Name(), value)
	}
}

func px(v float64) pr.PercentageOr[pr.Length] { return pr.NotPerc[pr.Length](pr.Length{Value: v, Unit: pr.Px}) }
func em(v float64) pr.PercentageOr[pr.Length] { return pr.NotPerc[pr.Length](pr.Length{Value: v, Unit: pr.Em}) }
func perc(v float64) pr.PercentageOr[pr.Length] { return pr.Perc[pr.Length](pr.Percentage(v)) }

func TestFourSidesOneValue(t *testing.T) {
	got := expand(t, pr.SMargin, "1em")
	want := map[pr.KnownProp]pr.SpecifiedValue{
		pr.PMarginTop:    pr.NotAuto(em(1)),
		pr.PMarginRight:  pr.NotAuto(em(1)),
		pr.PMarginBottom: pr.NotAuto(em(1)),
		pr.PMarginLeft:   pr.NotAuto(em(1)),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestFourSidesTwoValues(t *testing.T) {
	got := expand(t, pr.SPadding, "1em 0")
	want := map[pr.KnownProp]pr.SpecifiedValue{
		pr.PPaddingTop:    em(1),
		pr.PPaddingRight:  px(0),
		pr.PPaddingBottom: em(1),
		pr.PPaddingLeft:   px(0),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestFourSidesThreeValues(t *testing.T) {
	got := expand(t, pr.SMargin, "-1em auto 20%")
	want := map[pr.KnownProp]pr.SpecifiedValue{
		pr.PMarginTop:    pr.NotAuto(em(-1)),
		pr.PMarginRight:  pr.Auto[pr.PercentageOr[pr.Length]](),
		pr.PMarginBottom: pr.NotAuto(perc(20)),
		pr.PMarginLeft:   pr.Auto[pr.PercentageOr[pr.Length]](),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestFourSidesFourValues(t *testing.T) {
	got := expand(t, pr.SPadding, "1em 0 2em 5px")
	want := map[pr.KnownProp]pr.SpecifiedValue{
		pr.PPaddingTop:    em(1),
		pr.PPaddingRight:  px(0),
		pr.PPaddingBottom: em(2),
		pr.PPaddingLeft:   px(5),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestFourSidesTooManyComponents(t *testing.T) {
	assertExpandInvalid(t, pr.SPadding, "1px 2px 3px 4px 5px")
}

func TestFourSidesRejectsAutoOnPadding(t *testing.T) {
	assertExpandInvalid(t, pr.SPadding, "auto")
}

func TestFourSidesRejectsNegativeOnPadding(t *testing.T) {
	assertExpandInvalid(t, pr.SPadding, "-12px")
}

func TestBorderWidthRejectsPercentageAndNegative(t *testing.T) {
	assertExpandInvalid(t, pr.SBorderWidth, "12%")
	assertExpandInvalid(t, pr.SBorderWidth, "-3em")
}

func TestExpandBorderSideFullAndPartial(t *testing.T) {
	got := expand(t, pr.SBorderTop, "3px dotted red")
	want := map[pr.KnownProp]pr.SpecifiedValue{
		pr.PBorderTopWidth: pr.LineWidth{Length: pr.Length{Value: 3, Unit: pr.Px}},
		pr.PBorderTopStyle: pr.LineDotted,
		pr.PBorderTopColor: pr.NewColor(1, 0, 0, 1),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	got = expand(t, pr.SBorderTop, "solid")
	want = map[pr.KnownProp]pr.SpecifiedValue{
		pr.PBorderTopWidth: pr.InitialValues[pr.PBorderTopWidth],
		pr.PBorderTopStyle: pr.LineSolid,
		pr.PBorderTopColor: pr.InitialValues[pr.PBorderTopColor],
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestExpandBorderSideRejectsDuplicateComponentKind(t *testing.T) {
	assertExpandInvalid(t, pr.SBorderTop, "red blue")
	assertExpandInvalid(t, pr.SBorderTop, "solid dotted")
	assertExpandInvalid(t, pr.SBorderTop, "1px 2px")
}

func TestExpandBorderWritesAllFourSides(t *testing.T) {
	got := expand(t, pr.SBorder, "2px solid black")
	if len(got) != 12 {
		t.Fatalf("expected 12 longhands, got %d: %v", len(got), got)
	}
	wantWidth := pr.LineWidth{Length: pr.Length{Value: 2, Unit: pr.Px}}
	wantColor := pr.NewColor(0, 0, 0, 1)
	for _, side := range pr.BorderSides() {
		if got[side.Width] != wantWidth {
			t.Fatalf("side width mismatch: %#v", got[side.Width])
		}
		if got[side.Style] != pr.LineSolid {
			t.Fatalf("side style mismatch: %#v", got[side.Style])
		}
		if got[side.Color] != wantColor {
			t.Fatalf("side color mismatch: %#v", got[side.Color])
		}
	}
}
