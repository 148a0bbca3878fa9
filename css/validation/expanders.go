package validation

import (
	"fmt"

	pa "github.com/stormlicht/style/css/parser"
	pr "github.com/stormlicht/style/css/properties"
)

// expander turns the value tokens of a shorthand declaration into the
// longhand SpecifiedProperty values it stands for, mirroring the
// teacher's `expander` function type and `expanders [...]expander`
// dispatch array, narrowed here to the two shorthand families spec.md
// names: four-sides (margin/padding/border-color/border-style/
// border-width) and the border family (border, border-<side>).
type expander func(tokens []pa.Token) (map[pr.KnownProp]pr.SpecifiedValue, error)

var expanders = map[pr.Shorthand]expander{
	pr.SBorderColor: fourSidesExpander(pr.SBorderColor, colorValidator),
	pr.SBorderStyle: fourSidesExpander(pr.SBorderStyle, lineStyle),
	pr.SBorderWidth: fourSidesExpander(pr.SBorderWidth, borderWidth),
	pr.SMargin:      fourSidesExpander(pr.SMargin, marginWidth),
	pr.SPadding:     fourSidesExpander(pr.SPadding, paddingWidth),

	pr.SBorder:      expandBorder,
	pr.SBorderTop:    expandBorderSide(pr.SBorderTop),
	pr.SBorderRight:  expandBorderSide(pr.SBorderRight),
	pr.SBorderBottom: expandBorderSide(pr.SBorderBottom),
	pr.SBorderLeft:   expandBorderSide(pr.SBorderLeft),
}

// ExpandShorthand is the operation of spec.md §4.4: given a shorthand
// and its value tokens, it returns the full set of longhands the
// shorthand writes, one entry per longhand it covers. Per spec.md
// §4.1/§4.2, a component the value omits still resets its longhand —
// to that longhand's initial value, not a no-op — for every shorthand
// in the registry, border family included.
func ExpandShorthand(sh pr.Shorthand, tokens []pa.Token) (map[pr.KnownProp]pr.SpecifiedValue, error) {
	exp, ok := expanders[sh]
	if !ok {
		return nil, fmt.Errorf("%w: shorthand %q has no expander", ErrInvalidValue, sh.Name())
	}
	return exp(tokens)
}

// fourSidesExpander implements the 1/2/3/4-token expansion law of
// spec.md §4.4: one value -> all four sides; two -> top/bottom,
// right/left; three -> top, right/left, bottom; four -> top, right,
// bottom, left in that order. Grounded on the teacher's
// expandFourSides in css/validation/expanders.go.
func fourSidesExpander(sh pr.Shorthand, parseOne validator) expander {
	top, right, bottom, left, ok := pr.FourSidesLonghands(sh)
	if !ok {
		panic("validation: " + sh.Name() + " is not a four-sides shorthand")
	}
	return func(tokens []pa.Token) (map[pr.KnownProp]pr.SpecifiedValue, error) {
		parts, err := splitOnWhitespace(tokens)
		if err != nil {
			return nil, err
		}
		var values [4]pr.SpecifiedValue
		switch len(parts) {
		case 1:
			v, err := parseOne(parts[0])
			if err != nil {
				return nil, err
			}
			values = [4]pr.SpecifiedValue{v, v, v, v}
		case 2:
			v0, err := parseOne(parts[0])
			if err != nil {
				return nil, err
			}
			v1, err := parseOne(parts[1])
			if err != nil {
				return nil, err
			}
			values = [4]pr.SpecifiedValue{v0, v1, v0, v1}
		case 3:
			v0, err := parseOne(parts[0])
			if err != nil {
				return nil, err
			}
			v1, err := parseOne(parts[1])
			if err != nil {
				return nil, err
			}
			v2, err := parseOne(parts[2])
			if err != nil {
				return nil, err
			}
			values = [4]pr.SpecifiedValue{v0, v1, v2, v1}
		case 4:
			for i, p := range parts {
				v, err := parseOne(p)
				if err != nil {
					return nil, err
				}
				values[i] = v
			}
		default:
			return nil, fmt.Errorf("%w: expected 1 to 4 token components, got %d", ErrInvalidValue, len(parts))
		}
		return map[pr.KnownProp]pr.SpecifiedValue{
			top: values[0], right: values[1], bottom: values[2], left: values[3],
		}, nil
	}
}

// splitOnWhitespace groups tokens into whitespace-separated runs,
// dropping leading/trailing/duplicate whitespace, the same component
// splitting the teacher's expandFourSides does before dispatching
// each component to its value validator.
func splitOnWhitespace(tokens []pa.Token) ([][]pa.Token, error) {
	var parts [][]pa.Token
	var current []pa.Token
	flush := func() {
		if len(current) > 0 {
			parts = append(parts, current)
			current = nil
		}
	}
	for _, t := range tokens {
		if isWhitespace(t) {
			flush()
			continue
		}
		current = append(current, t)
	}
	flush()
	if len(parts) == 0 {
		return nil, ErrUnexpectedEOF
	}
	return parts, nil
}

// expandBorder expands the `border` shorthand, which writes all
// twelve color/style/width longhands at once from a single
// color/style/width triple given in any order (spec.md §4.4). A
// component kind given twice is an error, matching the teacher's
// genericExpander duplicate-detection map; a component the value
// omits gets that longhand's initial value on every side, matching
// the teacher's genericExpander comment "Missing suffixes get the
// initial value" (webrender css/validation/expanders.go).
func expandBorder(tokens []pa.Token) (map[pr.KnownProp]pr.SpecifiedValue, error) {
	b, err := parseBorderComponents(tokens)
	if err != nil {
		return nil, err
	}
	out := map[pr.KnownProp]pr.SpecifiedValue{}
	for _, side := range pr.BorderSides() {
		if b.HasColor {
			out[side.Color] = b.Color
		} else {
			out[side.Color] = pr.InitialValues[side.Color]
		}
		if b.HasStyle {
			out[side.Style] = b.Style
		} else {
			out[side.Style] = pr.InitialValues[side.Style]
		}
		if b.HasWidth {
			out[side.Width] = b.Width
		} else {
			out[side.Width] = pr.InitialValues[side.Width]
		}
	}
	return out, nil
}

// expandBorderSide expands `border-top|right|bottom|left`, the
// per-side counterpart of expandBorder, writing that side's three
// longhands; a component the value omits gets that longhand's initial
// value, same reset rule as expandBorder.
func expandBorderSide(sh pr.Shorthand) expander {
	color, style, width, ok := pr.BorderSideLonghands(sh)
	if !ok {
		panic("validation: " + sh.Name() + " is not a border-side shorthand")
	}
	return func(tokens []pa.Token) (map[pr.KnownProp]pr.SpecifiedValue, error) {
		b, err := parseBorderComponents(tokens)
		if err != nil {
			return nil, err
		}
		out := map[pr.KnownProp]pr.SpecifiedValue{}
		if b.HasColor {
			out[color] = b.Color
		} else {
			out[color] = pr.InitialValues[color]
		}
		if b.HasStyle {
			out[style] = b.Style
		} else {
			out[style] = pr.InitialValues[style]
		}
		if b.HasWidth {
			out[width] = b.Width
		} else {
			out[width] = pr.InitialValues[width]
		}
		return out, nil
	}
}

// parseBorderComponents parses the `<color> || <style> || <width>`
// grammar shared by border and border-<side>: each component may
// appear at most once, in any order, and any may be omitted.
func parseBorderComponents(tokens []pa.Token) (pr.Border, error) {
	parts, err := splitOnWhitespace(tokens)
	if err != nil {
		return pr.Border{}, err
	}
	var b pr.Border
	for _, p := range parts {
		if kw, ok := singleIdent(p); ok {
			if style, ok := pr.LineStyleFromKeyword(kw); ok {
				if b.HasStyle {
					return pr.Border{}, fmt.Errorf("%w: border-style given twice", ErrInvalidValue)
				}
				b.Style = style
				b.HasStyle = true
				continue
			}
			if k, ok := pr.BorderWidthKeywordFrom(kw); ok {
				if b.HasWidth {
					return pr.Border{}, fmt.Errorf("%w: border-width given twice", ErrInvalidValue)
				}
				b.Width = pr.LineWidth{Keyword: k}
				b.HasWidth = true
				continue
			}
		}
		if v, err := colorValidator(p); err == nil {
			if b.HasColor {
				return pr.Border{}, fmt.Errorf("%w: border-color given twice", ErrInvalidValue)
			}
			b.Color = v.(pr.Color)
			b.HasColor = true
			continue
		}
		if v, err := borderWidth(p); err == nil {
			if b.HasWidth {
				return pr.Border{}, fmt.Errorf("%w: border-width given twice", ErrInvalidValue)
			}
			b.Width = v.(pr.LineWidth)
			b.HasWidth = true
			continue
		}
		return pr.Border{}, fmt.Errorf("%w: unrecognized border component", ErrInvalidValue)
	}
	return b, nil
}
