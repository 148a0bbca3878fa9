// Package validation implements the Property Enum & Parser Dispatch
// component: one parser function per longhand, dispatched through a
// map indexed by pr.KnownProp, exactly as the teacher dispatches
// through its own `validators [...]validator` array.
//
// :copyright: Copyright 2011-2014 Simon Sapin and contributors, see AUTHORS.
// :license: BSD, see LICENSE for details.
package validation

import (
	"errors"
	"fmt"
	"strings"

	pa "github.com/stormlicht/style/css/parser"
	pr "github.com/stormlicht/style/css/properties"
	"github.com/stormlicht/style/css/properties/keywords"
)

// ErrUnknownProperty, ErrInvalidValue, ErrUnexpectedEOF and
// ErrTrailingTokens are the error kinds a caller can match on with
// errors.Is; each is wrapped with the offending name/position.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid or unsupported value")
	ErrUnexpectedEOF   = errors.New("unexpected end of value")
	ErrTrailingTokens  = errors.New("unexpected trailing tokens")
)

// validator parses the value of one longhand, consuming all of
// tokens. A grammar mismatch returns a wrapped ErrInvalidValue; a
// validator that would otherwise stop short of the end must itself
// report ErrTrailingTokens.
type validator func(tokens []pa.Token) (pr.SpecifiedValue, error)

// validators is indexed by pr.KnownProp, mirroring the teacher's
// `validators [...]validator` array in css/validation/validation.go.
var validators = map[pr.KnownProp]validator{
	pr.PBackgroundColor:  colorValidator,
	pr.PBackgroundImage:  backgroundImage,
	pr.PBackgroundRepeat: backgroundRepeat,

	pr.PBorderTopColor: colorValidator, pr.PBorderRightColor: colorValidator,
	pr.PBorderBottomColor: colorValidator, pr.PBorderLeftColor: colorValidator,
	pr.PBorderTopStyle: lineStyle, pr.PBorderRightStyle: lineStyle,
	pr.PBorderBottomStyle: lineStyle, pr.PBorderLeftStyle: lineStyle,
	pr.PBorderTopWidth: borderWidth, pr.PBorderRightWidth: borderWidth,
	pr.PBorderBottomWidth: borderWidth, pr.PBorderLeftWidth: borderWidth,

	pr.PBottom: lengthPercentageOrAuto, pr.PLeft: lengthPercentageOrAuto,
	pr.PRight: lengthPercentageOrAuto, pr.PTop: lengthPercentageOrAuto,
	pr.PWidth: lengthPercentageOrAuto, pr.PHeight: lengthPercentageOrAuto,
	pr.PMaxWidth: lengthPercentageOrNone, pr.PMaxHeight: lengthPercentageOrNone,
	pr.PMinWidth: lengthPercentageNoAuto, pr.PMinHeight: lengthPercentageNoAuto,

	pr.PBoxSizing:     boxSizing,
	pr.PClear:         clearProp,
	pr.PColor:         colorValidator,
	pr.PCursor:        cursorProp,
	pr.PDisplay:       display,
	pr.PFloat:         floatProp,
	pr.PFontFamily:    fontFamily,
	pr.PFontSize:      fontSize,
	pr.PFontStyle:     fontStyle,
	pr.PFontWeight:    fontWeight,
	pr.PJustifySelf:   justifySelf,
	pr.PLineHeight:    lineHeight,
	pr.PListStyleType: listStyleType,

	pr.PMarginTop: marginWidth, pr.PMarginRight: marginWidth,
	pr.PMarginBottom: marginWidth, pr.PMarginLeft: marginWidth,

	pr.POpacity:  opacity,
	pr.POverflow: overflow,

	pr.PPaddingTop: paddingWidth, pr.PPaddingRight: paddingWidth,
	pr.PPaddingBottom: paddingWidth, pr.PPaddingLeft: paddingWidth,

	pr.PPosition:      position,
	pr.PTextAlign:     textAlign,
	pr.PVerticalAlign: verticalAlign,
	pr.PVisibility:    visibility,
	pr.PZIndex:        zIndex,
}

func init() {
	for p := range pr.InitialValues {
		if _, ok := validators[p]; !ok {
			panic(fmt.Sprintf("validation: %s has no registered validator", p.Name()))
		}
	}
}

// DeclValue is the resolved right-hand side of one longhand, after a
// (possibly shorthand) declaration has been parsed and, if needed,
// expanded. Exactly one of Keyword/Value is meaningful, matching
// pr.SpecifiedProperty's own Keyword/Value split.
type DeclValue struct {
	Keyword pr.CSSWideKeyword
	Value   pr.SpecifiedValue
}

// ParseDeclaration is the Property Enum & Parser Dispatch + shorthand
// expansion operation of spec.md §4.2/§4.4 combined: given a
// declaration's name and value tokens, it returns every longhand the
// declaration resolves to. A plain longhand declaration returns a
// single-entry map; a shorthand always returns one entry per longhand
// its grammar covers — the `inherit`/`initial` wide keywords expand to
// every one of them, and an ordinary value expands to every one of
// them too, resetting any component the value omits to that
// longhand's initial value (spec.md §4.1/§4.2), for both the
// four-sides family and the border family.
func ParseDeclaration(name string, tokens []pa.Token) (map[pr.KnownProp]DeclValue, error) {
	tokens = trimWhitespace(tokens)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrUnexpectedEOF)
	}

	interned, known := keywords.Lookup(name)
	if !known {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}

	wideKw := pr.NoCSSWideKeyword
	if kw, ok := singleIdent(tokens); ok {
		switch kw {
		case "inherit":
			wideKw = pr.Inherit
		case "initial":
			wideKw = pr.Initial
		}
	}

	if prop, ok := pr.PropsFromNames[interned]; ok {
		if wideKw != pr.NoCSSWideKeyword {
			return map[pr.KnownProp]DeclValue{prop: {Keyword: wideKw}}, nil
		}
		v, err := validators[prop](tokens)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		return map[pr.KnownProp]DeclValue{prop: {Value: v}}, nil
	}

	if sh, ok := pr.ShorthandsFromNames[interned]; ok {
		longhands := pr.AllLonghandsOf(sh)
		if wideKw != pr.NoCSSWideKeyword {
			out := make(map[pr.KnownProp]DeclValue, len(longhands))
			for _, lh := range longhands {
				out[lh] = DeclValue{Keyword: wideKw}
			}
			return out, nil
		}
		expanded, err := ExpandShorthand(sh, tokens)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		out := make(map[pr.KnownProp]DeclValue, len(expanded))
		for prop, v := range expanded {
			out[prop] = DeclValue{Value: v}
		}
		return out, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownProperty)
}

// --- token-level helpers, grounded on the teacher's getLength/getKeyword family ---

func trimWhitespace(tokens []pa.Token) []pa.Token {
	start := 0
	for start < len(tokens) && isWhitespace(tokens[start]) {
		start++
	}
	end := len(tokens)
	for end > start && isWhitespace(tokens[end-1]) {
		end--
	}
	return tokens[start:end]
}

func isWhitespace(t pa.Token) bool { return t.Kind() == pa.KWhitespace || t.Kind() == pa.KComment }

func significant(tokens []pa.Token) []pa.Token {
	out := make([]pa.Token, 0, len(tokens))
	for _, t := range tokens {
		if !isWhitespace(t) {
			out = append(out, t)
		}
	}
	return out
}

// singleIdent returns the folded keyword if tokens is exactly one
// identifier (ignoring surrounding whitespace).
func singleIdent(tokens []pa.Token) (string, bool) {
	sig := significant(tokens)
	if len(sig) != 1 {
		return "", false
	}
	ident, ok := sig[0].(pa.IdentToken)
	if !ok {
		return "", false
	}
	return ident.Value.Lower(), true
}

func oneToken(tokens []pa.Token) (pa.Token, bool) {
	sig := significant(tokens)
	if len(sig) != 1 {
		return nil, false
	}
	return sig[0], true
}

var lengthUnits = map[string]pr.LengthUnit{
	"px": pr.Px, "pt": pr.Pt, "pc": pr.Pc, "in": pr.In, "cm": pr.Cm, "mm": pr.Mm, "q": pr.Q,
	"em": pr.Em, "rem": pr.Rem, "vw": pr.Vw, "vh": pr.Vh,
}

func getLength(tok pa.Token, negativeOK, percentageOK bool) (pr.PercentageOr[pr.Length], error) {
	switch t := tok.(type) {
	case pa.DimensionToken:
		unit, ok := lengthUnits[t.Unit.Lower()]
		if !ok {
			return pr.PercentageOr[pr.Length]{}, fmt.Errorf("unknown unit %q", string(t.Unit))
		}
		if !negativeOK && t.Value < 0 {
			return pr.PercentageOr[pr.Length]{}, fmt.Errorf("negative length not allowed")
		}
		return pr.NotPerc[pr.Length](pr.Length{Value: t.Value, Unit: unit}), nil
	case pa.NumberToken:
		if t.Value != 0 {
			return pr.PercentageOr[pr.Length]{}, fmt.Errorf("expected a unit")
		}
		return pr.NotPerc[pr.Length](pr.ZeroPixels), nil
	case pa.PercentageToken:
		if !percentageOK {
			return pr.PercentageOr[pr.Length]{}, fmt.Errorf("percentage not allowed here")
		}
		if !negativeOK && t.Value < 0 {
			return pr.PercentageOr[pr.Length]{}, fmt.Errorf("negative percentage not allowed")
		}
		return pr.Perc[pr.Length](pr.Percentage(t.Value)), nil
	}
	return pr.PercentageOr[pr.Length]{}, fmt.Errorf("expected a length, got %T", tok)
}

// --- longhand validators ---

func lengthPercentageOrAuto(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok && kw == "auto" {
		return pr.Auto[pr.PercentageOr[pr.Length]](), nil
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, true, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.NotAuto(l), nil
}

func lengthPercentageOrNone(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok && kw == "none" {
		return pr.Auto[pr.PercentageOr[pr.Length]](), nil
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, false, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.NotAuto(l), nil
}

func lengthPercentageNoAuto(tokens []pa.Token) (pr.SpecifiedValue, error) {
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, false, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return l, nil
}

func marginWidth(tokens []pa.Token) (pr.SpecifiedValue, error) { return lengthPercentageOrAuto(tokens) }

func paddingWidth(tokens []pa.Token) (pr.SpecifiedValue, error) {
	return lengthPercentageNoAuto(tokens)
}

func borderWidth(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok {
		if k, ok := pr.BorderWidthKeywordFrom(kw); ok {
			return pr.LineWidth{Keyword: k}, nil
		}
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, false, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.LineWidth{Length: l.Value}, nil
}

func lineStyle(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.LineStyleFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a border-style keyword", ErrInvalidValue, kw)
	}
	return v, nil
}

func boxSizing(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.BoxSizingFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func clearProp(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.ClearFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func cursorProp(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.CursorFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func display(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.DisplayFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func floatProp(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.FloatFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func position(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.PositionFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func overflow(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.OverflowFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func textAlign(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.TextAlignFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func visibility(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.VisibilityFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func justifySelf(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.JustifySelfFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func listStyleType(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.ListStyleTypeFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func backgroundRepeat(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.BackgroundRepeatFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func backgroundImage(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok && kw == "none" {
		return pr.BackgroundImage{IsNone: true}, nil
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	u, ok := tok.(pa.URLToken)
	if !ok || u.IsError {
		return nil, fmt.Errorf("%w: expected url(...) or none", ErrInvalidValue)
	}
	return pr.BackgroundImage{URL: u.Value}, nil
}

func fontFamily(tokens []pa.Token) (pr.SpecifiedValue, error) {
	sig := significant(tokens)
	if len(sig) == 0 {
		return nil, ErrUnexpectedEOF
	}
	var families []string
	var current []string
	flush := func() error {
		if len(current) == 0 {
			return fmt.Errorf("%w: empty font-family component", ErrInvalidValue)
		}
		families = append(families, strings.Join(current, " "))
		current = nil
		return nil
	}
	for _, t := range sig {
		switch tok := t.(type) {
		case pa.StringToken:
			current = append(current, tok.Value)
		case pa.IdentToken:
			current = append(current, string(tok.Value))
		case pa.DelimToken:
			if tok.Value != "," {
				return nil, fmt.Errorf("%w: unexpected %q in font-family", ErrInvalidValue, tok.Value)
			}
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected token in font-family", ErrInvalidValue)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return pr.FontFamily(families), nil
}

func fontStyle(tokens []pa.Token) (pr.SpecifiedValue, error) {
	kw, ok := singleIdent(tokens)
	if !ok {
		return nil, ErrInvalidValue
	}
	v, ok := pr.FontStyleFromKeyword(kw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	return v, nil
}

func fontWeight(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok {
		switch kw {
		case "normal":
			return pr.FontWeight{Keyword: pr.FontWeightNormal}, nil
		case "bold":
			return pr.FontWeight{Keyword: pr.FontWeightBold}, nil
		case "bolder":
			return pr.FontWeight{Keyword: pr.FontWeightBolder}, nil
		case "lighter":
			return pr.FontWeight{Keyword: pr.FontWeightLighter}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	n, ok := tok.(pa.NumberToken)
	if !ok || !n.IsInteger || n.Value < 1 || n.Value > 1000 {
		return nil, fmt.Errorf("%w: font-weight must be a number in [1,1000]", ErrInvalidValue)
	}
	return pr.FontWeight{Keyword: pr.FontWeightNumber, Number: int(n.Value)}, nil
}

func fontSize(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok {
		if k, ok := pr.FontSizeKeywordFrom(kw); ok {
			return pr.FontSize{Keyword: k}, nil
		}
		return nil, fmt.Errorf("%w: %q is not a font-size keyword", ErrInvalidValue, kw)
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, false, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.FontSize{IsLength: true, Percentage: l}, nil
}

func lineHeight(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok && kw == "normal" {
		return pr.LineHeight{IsNormal: true}, nil
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	if n, ok := tok.(pa.NumberToken); ok && n.Value >= 0 {
		return pr.LineHeight{IsNumber: true, Number: n.Value}, nil
	}
	l, err := getLength(tok, false, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.LineHeight{Length: l.Value}, nil
}

func verticalAlign(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok {
		if k, ok := pr.VerticalAlignFromKeyword(kw); ok {
			return pr.VerticalAlign{Keyword: k}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, kw)
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	l, err := getLength(tok, true, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return pr.VerticalAlign{IsLength: true, Length: l}, nil
}

func opacity(tokens []pa.Token) (pr.SpecifiedValue, error) {
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	n, ok := tok.(pa.NumberToken)
	if !ok {
		return nil, fmt.Errorf("%w: opacity expects a number", ErrInvalidValue)
	}
	v := n.Value
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return pr.Opacity(v), nil
}

func zIndex(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok && kw == "auto" {
		return pr.Auto[int](), nil
	}
	tok, ok := oneToken(tokens)
	if !ok {
		return nil, ErrTrailingTokens
	}
	n, ok := tok.(pa.NumberToken)
	if !ok || !n.IsInteger {
		return nil, fmt.Errorf("%w: z-index expects an integer or auto", ErrInvalidValue)
	}
	return pr.NotAuto(int(n.Value)), nil
}

// --- color grammar, shared by color/background-color/border-*-color ---

func colorValidator(tokens []pa.Token) (pr.SpecifiedValue, error) {
	if kw, ok := singleIdent(tokens); ok {
		if kw == "currentcolor" {
			return pr.CurrentColor, nil
		}
		if kw == "transparent" {
			return pr.NewColor(0, 0, 0, 0), nil
		}
		if c, ok := namedColors[kw]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %q is not a color keyword", ErrInvalidValue, kw)
	}
	tok, ok := oneToken(tokens)
	if ok {
		if h, ok := tok.(pa.HashToken); ok {
			return parseHexColor(h.Value)
		}
		if fn, ok := tok.(pa.FunctionToken); ok {
			return parseColorFunction(fn)
		}
	}
	return nil, fmt.Errorf("%w: expected a color", ErrInvalidValue)
}

func parseHexColor(hex string) (pr.Color, error) {
	parse := func(s string) (float64, bool) {
		var n int64
		if _, err := fmt.Sscanf(s, "%x", &n); err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}
	switch len(hex) {
	case 3, 4:
		var out [4]float64
		out[3] = 1
		for i, c := range hex {
			v, ok := parse(string(c) + string(c))
			if !ok {
				return pr.Color{}, fmt.Errorf("%w: invalid hex color #%s", ErrInvalidValue, hex)
			}
			out[i] = v
		}
		return pr.NewColor(out[0], out[1], out[2], out[3]), nil
	case 6, 8:
		var out [4]float64
		out[3] = 1
		for i := 0; i*2 < len(hex); i++ {
			v, ok := parse(hex[i*2 : i*2+2])
			if !ok {
				return pr.Color{}, fmt.Errorf("%w: invalid hex color #%s", ErrInvalidValue, hex)
			}
			out[i] = v
		}
		return pr.NewColor(out[0], out[1], out[2], out[3]), nil
	}
	return pr.Color{}, fmt.Errorf("%w: invalid hex color #%s", ErrInvalidValue, hex)
}

func parseColorFunction(fn pa.FunctionToken) (pr.Color, error) {
	name := fn.Name.Lower()
	if name != "rgb" && name != "rgba" {
		return pr.Color{}, fmt.Errorf("%w: unsupported color function %q", ErrInvalidValue, name)
	}
	var nums []float64
	for _, t := range significant(fn.Arguments) {
		switch n := t.(type) {
		case pa.NumberToken:
			nums = append(nums, n.Value)
		case pa.PercentageToken:
			nums = append(nums, n.Value/100*255)
		case pa.DelimToken:
			if n.Value != "," && n.Value != "/" {
				return pr.Color{}, fmt.Errorf("%w: unexpected %q in %s()", ErrInvalidValue, n.Value, name)
			}
		default:
			return pr.Color{}, fmt.Errorf("%w: unexpected token in %s()", ErrInvalidValue, name)
		}
	}
	if len(nums) != 3 && len(nums) != 4 {
		return pr.Color{}, fmt.Errorf("%w: %s() expects 3 or 4 components", ErrInvalidValue, name)
	}
	a := 1.0
	if len(nums) == 4 {
		a = nums[3]
	}
	return pr.NewColor(clamp01(nums[0]/255), clamp01(nums[1]/255), clamp01(nums[2]/255), clamp01(a)), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var namedColors = map[string]pr.Color{
	"black": pr.NewColor(0, 0, 0, 1), "white": pr.NewColor(1, 1, 1, 1),
	"red": pr.NewColor(1, 0, 0, 1), "green": pr.NewColor(0, 0.5, 0, 1),
	"blue": pr.NewColor(0, 0, 1, 1), "yellow": pr.NewColor(1, 1, 0, 1),
	"orange": pr.NewColor(1, 0.647, 0, 1), "purple": pr.NewColor(0.5, 0, 0.5, 1),
	"gray": pr.NewColor(0.5, 0.5, 0.5, 1), "grey": pr.NewColor(0.5, 0.5, 0.5, 1),
	"lime": pr.NewColor(0, 1, 0, 1), "navy": pr.NewColor(0, 0, 0.5, 1),
	"teal": pr.NewColor(0, 0.5, 0.5, 1), "silver": pr.NewColor(0.753, 0.753, 0.753, 1),
	"maroon": pr.NewColor(0.5, 0, 0, 1), "olive": pr.NewColor(0.5, 0.5, 0, 1),
	"aqua": pr.NewColor(0, 1, 1, 1), "fuchsia": pr.NewColor(1, 0, 1, 1),
	"pink": pr.NewColor(1, 0.753, 0.796, 1), "brown": pr.NewColor(0.647, 0.165, 0.165, 1),
	"cyan": pr.NewColor(0, 1, 1, 1), "magenta": pr.NewColor(1, 0, 1, 1),
}
