package properties

import "github.com/stormlicht/style/css/properties/keywords"

// KnownProp is the property registry's enum of longhands (spec.md
// §4.1). Border color/style/width for a given side are declared as
// three consecutive constants (color, style, width in that order); the
// borderSides table below records the same per-side grouping.
type KnownProp uint16

const (
	_ KnownProp = iota // zero value means "not a known property"

	PBackgroundColor
	PBackgroundImage
	PBackgroundRepeat

	PBorderTopColor
	PBorderTopStyle
	PBorderTopWidth
	PBorderRightColor
	PBorderRightStyle
	PBorderRightWidth
	PBorderBottomColor
	PBorderBottomStyle
	PBorderBottomWidth
	PBorderLeftColor
	PBorderLeftStyle
	PBorderLeftWidth

	PBottom
	PBoxSizing
	PClear
	PColor
	PCursor
	PDisplay
	PFloat
	PFontFamily
	PFontSize
	PFontStyle
	PFontWeight
	PHeight
	PJustifySelf
	PLeft
	PLineHeight
	PListStyleType

	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft

	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	POpacity
	POverflow

	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft

	PPosition
	PRight
	PTextAlign
	PTop
	PVerticalAlign
	PVisibility
	PWidth
	PZIndex

	numKnownProps
)

// Shorthand is the registry's enum of shorthand properties (spec.md
// §4.1): four-sides shorthands and the border family.
type Shorthand uint8

const (
	_ Shorthand = iota

	SBorderColor
	SBorderStyle
	SBorderWidth
	SMargin
	SPadding

	SBorder
	SBorderTop
	SBorderRight
	SBorderBottom
	SBorderLeft

	numShorthands
)

// Name is the canonical kebab-case CSS name of p.
func (p KnownProp) Name() string { return longhandNames[p] }

// Name is the canonical kebab-case CSS name of s.
func (s Shorthand) Name() string { return shorthandNames[s] }

var longhandNames = map[KnownProp]string{
	PBackgroundColor: "background-color", PBackgroundImage: "background-image", PBackgroundRepeat: "background-repeat",
	PBorderTopColor: "border-top-color", PBorderTopStyle: "border-top-style", PBorderTopWidth: "border-top-width",
	PBorderRightColor: "border-right-color", PBorderRightStyle: "border-right-style", PBorderRightWidth: "border-right-width",
	PBorderBottomColor: "border-bottom-color", PBorderBottomStyle: "border-bottom-style", PBorderBottomWidth: "border-bottom-width",
	PBorderLeftColor: "border-left-color", PBorderLeftStyle: "border-left-style", PBorderLeftWidth: "border-left-width",
	PBottom: "bottom", PBoxSizing: "box-sizing", PClear: "clear", PColor: "color", PCursor: "cursor",
	PDisplay: "display", PFloat: "float", PFontFamily: "font-family", PFontSize: "font-size",
	PFontStyle: "font-style", PFontWeight: "font-weight", PHeight: "height", PJustifySelf: "justify-self",
	PLeft: "left", PLineHeight: "line-height", PListStyleType: "list-style-type",
	PMarginTop: "margin-top", PMarginRight: "margin-right", PMarginBottom: "margin-bottom", PMarginLeft: "margin-left",
	PMaxHeight: "max-height", PMaxWidth: "max-width", PMinHeight: "min-height", PMinWidth: "min-width",
	POpacity: "opacity", POverflow: "overflow",
	PPaddingTop: "padding-top", PPaddingRight: "padding-right", PPaddingBottom: "padding-bottom", PPaddingLeft: "padding-left",
	PPosition: "position", PRight: "right", PTextAlign: "text-align", PTop: "top",
	PVerticalAlign: "vertical-align", PVisibility: "visibility", PWidth: "width", PZIndex: "z-index",
}

var shorthandNames = map[Shorthand]string{
	SBorderColor: "border-color", SBorderStyle: "border-style", SBorderWidth: "border-width",
	SMargin: "margin", SPadding: "padding",
	SBorder: "border", SBorderTop: "border-top", SBorderRight: "border-right",
	SBorderBottom: "border-bottom", SBorderLeft: "border-left",
}

// PropsFromNames and ShorthandsFromNames are the O(1) name->enum
// dispatch tables of spec.md §4.2, keyed by interned, case-folded
// name.
var (
	PropsFromNames      = map[keywords.Name]KnownProp{}
	ShorthandsFromNames = map[keywords.Name]Shorthand{}
)

func init() {
	for p, name := range longhandNames {
		PropsFromNames[keywords.Intern(name)] = p
	}
	for s, name := range shorthandNames {
		ShorthandsFromNames[keywords.Intern(name)] = s
	}
}

// Inherited is the set of longhands whose value, absent an explicit
// declaration, is taken from the parent's computed style rather than
// from the property's initial value (spec.md §3 invariant 2, §6).
var Inherited = map[KnownProp]bool{
	PColor: true, PCursor: true, PFontFamily: true, PFontSize: true, PFontStyle: true,
	PFontWeight: true, PLineHeight: true, PListStyleType: true, PTextAlign: true, PVisibility: true,
}

// borderSides groups each side's three consecutive color/style/width
// constants, used by BorderSideLonghands, BorderSides and
// AllLonghandsOf for the border-family shorthands.
var borderSides = [4]struct {
	Color, Style, Width KnownProp
}{
	{PBorderTopColor, PBorderTopStyle, PBorderTopWidth},
	{PBorderRightColor, PBorderRightStyle, PBorderRightWidth},
	{PBorderBottomColor, PBorderBottomStyle, PBorderBottomWidth},
	{PBorderLeftColor, PBorderLeftStyle, PBorderLeftWidth},
}

// FourSidesLonghands returns the {top, right, bottom, left} longhands
// a four-sides shorthand expands into.
func FourSidesLonghands(s Shorthand) (top, right, bottom, left KnownProp, ok bool) {
	switch s {
	case SMargin:
		return PMarginTop, PMarginRight, PMarginBottom, PMarginLeft, true
	case SPadding:
		return PPaddingTop, PPaddingRight, PPaddingBottom, PPaddingLeft, true
	case SBorderColor:
		return PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor, true
	case SBorderStyle:
		return PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle, true
	case SBorderWidth:
		return PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth, true
	}
	return 0, 0, 0, 0, false
}

// BorderSideLonghands returns the color/style/width longhands for the
// side shorthand `border-top|right|bottom|left`.
func BorderSideLonghands(s Shorthand) (color, style, width KnownProp, ok bool) {
	switch s {
	case SBorderTop:
		return borderSides[0].Color, borderSides[0].Style, borderSides[0].Width, true
	case SBorderRight:
		return borderSides[1].Color, borderSides[1].Style, borderSides[1].Width, true
	case SBorderBottom:
		return borderSides[2].Color, borderSides[2].Style, borderSides[2].Width, true
	case SBorderLeft:
		return borderSides[3].Color, borderSides[3].Style, borderSides[3].Width, true
	}
	return 0, 0, 0, false
}

// BorderSides lists all four sides' (color, style, width) triples, in
// top/right/bottom/left order, for the `border` shorthand which
// writes all twelve longhands at once.
func BorderSides() [4]struct{ Color, Style, Width KnownProp } { return borderSides }

// AllLonghandsOf lists every longhand a shorthand can write, used to
// expand the `inherit`/`initial` wide keywords applied to a shorthand
// (spec.md §6) to every longhand it covers, even those the shorthand's
// value did not mention.
func AllLonghandsOf(s Shorthand) []KnownProp {
	if top, right, bottom, left, ok := FourSidesLonghands(s); ok {
		return []KnownProp{top, right, bottom, left}
	}
	if color, style, width, ok := BorderSideLonghands(s); ok {
		return []KnownProp{color, style, width}
	}
	if s == SBorder {
		out := make([]KnownProp, 0, 12)
		for _, side := range borderSides {
			out = append(out, side.Color, side.Style, side.Width)
		}
		return out
	}
	return nil
}

// InitialValues holds the registry's initial specified value for
// every longhand (spec.md §3 invariant 3, §8 invariant 1). A fresh
// ComputedStyle is built by lowering every entry of this table in the
// default style context.
var InitialValues = map[KnownProp]SpecifiedValue{
	PBackgroundColor: NewColor(0, 0, 0, 0), // "transparent"
	PBackgroundImage: BackgroundImage{IsNone: true},
	PBackgroundRepeat: BackgroundRepeatBoth,

	PBorderTopColor: CurrentColor, PBorderRightColor: CurrentColor, PBorderBottomColor: CurrentColor, PBorderLeftColor: CurrentColor,
	PBorderTopStyle: LineNone, PBorderRightStyle: LineNone, PBorderBottomStyle: LineNone, PBorderLeftStyle: LineNone,
	PBorderTopWidth:   LineWidth{Keyword: Medium},
	PBorderRightWidth: LineWidth{Keyword: Medium},
	PBorderBottomWidth: LineWidth{Keyword: Medium},
	PBorderLeftWidth:  LineWidth{Keyword: Medium},

	PBottom: Auto[PercentageOr[Length]](),
	PBoxSizing: BoxSizingContentBox,
	PClear: ClearNone,
	PColor: NewColor(0, 0, 0, 1), // black
	PCursor: CursorAuto,
	PDisplay: DisplayInline,
	PFloat: FloatNone,
	PFontFamily: FontFamily{"sans-serif"},
	PFontSize: FontSize{Keyword: FontSizeMedium},
	PFontStyle: FontStyleNormal,
	PFontWeight: FontWeight{Keyword: FontWeightNormal},
	PHeight: Auto[PercentageOr[Length]](),
	PJustifySelf: JustifySelfAuto,
	PLeft: Auto[PercentageOr[Length]](),
	PLineHeight: LineHeight{IsNormal: true},
	PListStyleType: ListStyleDisc,

	PMarginTop: Auto[PercentageOr[Length]](), PMarginRight: Auto[PercentageOr[Length]](),
	PMarginBottom: Auto[PercentageOr[Length]](), PMarginLeft: Auto[PercentageOr[Length]](),

	PMaxHeight: Auto[PercentageOr[Length]](), // "none" shares the Auto branch, see types.go
	PMaxWidth:  Auto[PercentageOr[Length]](),
	PMinHeight: NotPerc[Length](ZeroPixels),
	PMinWidth:  NotPerc[Length](ZeroPixels),
	POpacity:   Opacity(1),
	POverflow:  OverflowVisible,

	PPaddingTop: NotPerc[Length](ZeroPixels), PPaddingRight: NotPerc[Length](ZeroPixels),
	PPaddingBottom: NotPerc[Length](ZeroPixels), PPaddingLeft: NotPerc[Length](ZeroPixels),

	PPosition: PositionStatic,
	PRight:    Auto[PercentageOr[Length]](),
	PTextAlign: TextAlignLeft,
	PTop:       Auto[PercentageOr[Length]](),
	PVerticalAlign: VerticalAlign{Keyword: VerticalAlignBaseline},
	PVisibility:    VisibilityVisible,
	PWidth:         Auto[PercentageOr[Length]](),
	PZIndex:        Auto[int](),
}

func init() {
	if len(InitialValues) != int(numKnownProps)-1 {
		panic("properties: InitialValues is missing an entry for a registered KnownProp")
	}
}
