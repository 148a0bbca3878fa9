package validation

import (
	"errors"
	"reflect"
	"testing"

	pa "github.com/stormlicht/style/css/parser"
	pr "github.com/stormlicht/style/css/properties"
)

func parseOne(t *testing.T, name, value string) map[pr.KnownProp]DeclValue {
	t.Helper()
	tokens := pa.Tokenize([]byte(value), true)
	got, err := ParseDeclaration(name, tokens)
	if err != nil {
		t.Fatalf("%s: %s: unexpected error: %v", name, value, err)
	}
	return got
}

func assertInvalid(t *testing.T, name, value string) {
	t.Helper()
	tokens := pa.Tokenize([]byte(value), true)
	_, err := ParseDeclaration(name, tokens)
	if err == nil {
		t.Fatalf("%s: %s: expected an error, got none", name, value)
	}
}

func TestLonghandLength(t *testing.T) {
	got := parseOne(t, "width", "10px")
	want := map[pr.KnownProp]DeclValue{
		pr.PWidth: {Value: pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: 10, Unit: pr.Px}))},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestLonghandAuto(t *testing.T) {
	got := parseOne(t, "margin-left", "auto")
	want := map[pr.KnownProp]DeclValue{
		pr.PMarginLeft: {Value: pr.Auto[pr.PercentageOr[pr.Length]]()},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestLonghandWideKeyword(t *testing.T) {
	got := parseOne(t, "color", "inherit")
	want := map[pr.KnownProp]DeclValue{pr.PColor: {Keyword: pr.Inherit}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	got = parseOne(t, "color", "initial")
	want = map[pr.KnownProp]DeclValue{pr.PColor: {Keyword: pr.Initial}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestShorthandWideKeywordExpandsEveryLonghand(t *testing.T) {
	got := parseOne(t, "margin", "inherit")
	want := map[pr.KnownProp]DeclValue{
		pr.PMarginTop:    {Keyword: pr.Inherit},
		pr.PMarginRight:  {Keyword: pr.Inherit},
		pr.PMarginBottom: {Keyword: pr.Inherit},
		pr.PMarginLeft:   {Keyword: pr.Inherit},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestBorderShorthandWideKeywordCoversAllTwelveLonghands(t *testing.T) {
	got := parseOne(t, "border", "initial")
	if len(got) != 12 {
		t.Fatalf("expected 12 longhands, got %d: %v", len(got), got)
	}
	for prop, dv := range got {
		if dv.Keyword != pr.Initial {
			t.Fatalf("%v: expected Initial keyword, got %#v", prop, dv)
		}
	}
}

func TestUnknownProperty(t *testing.T) {
	assertInvalid(t, "not-a-property", "1px")
}

func TestEmptyValue(t *testing.T) {
	assertInvalid(t, "width", "   ")
}

func TestInvalidColorValue(t *testing.T) {
	assertInvalid(t, "color", "not-a-color")
}

func TestNegativeLengthRejectedWhereDisallowed(t *testing.T) {
	assertInvalid(t, "padding-left", "-1px")
}

func TestNegativeLengthAllowedOnMargin(t *testing.T) {
	got := parseOne(t, "margin-left", "-1px")
	want := map[pr.KnownProp]DeclValue{
		pr.PMarginLeft: {Value: pr.NotAuto(pr.NotPerc[pr.Length](pr.Length{Value: -1, Unit: pr.Px}))},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	tokens := pa.Tokenize([]byte("not-a-color"), true)
	_, err := ParseDeclaration("color", tokens)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}

	tokens = pa.Tokenize([]byte("1px"), true)
	_, err = ParseDeclaration("not-a-property", tokens)
	if !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
}

func TestColorHexAndCurrentColor(t *testing.T) {
	got := parseOne(t, "color", "#ff0000")
	want := map[pr.KnownProp]DeclValue{pr.PColor: {Value: pr.NewColor(1, 0, 0, 1)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	got = parseOne(t, "color", "currentcolor")
	want = map[pr.KnownProp]DeclValue{pr.PColor: {Value: pr.CurrentColor}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestFontWeightNumberAndKeyword(t *testing.T) {
	got := parseOne(t, "font-weight", "bold")
	want := map[pr.KnownProp]DeclValue{pr.PFontWeight: {Value: pr.FontWeight{Keyword: pr.FontWeightBold}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	got = parseOne(t, "font-weight", "600")
	want = map[pr.KnownProp]DeclValue{pr.PFontWeight: {Value: pr.FontWeight{Keyword: pr.FontWeightNumber, Number: 600}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	assertInvalid(t, "font-weight", "1001")
}
