// Package properties implements the value-type algebra, the property
// registry and the KnownProp enum for the style engine.
package properties

import "fmt"

// LengthUnit identifies the unit a Length was written in. Absolute
// units convert to pixels by a fixed factor; em/rem/vw/vh need a
// style context to resolve (see package style).
type LengthUnit uint8

const (
	Px LengthUnit = iota
	Pt
	Pc
	In
	Cm
	Mm
	Q
	Em
	Rem
	Vw
	Vh
)

func (u LengthUnit) String() string {
	switch u {
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	}
	return "?"
}

// LengthsToPixels holds the fixed px-per-unit factor for every
// absolute unit. Font- and viewport-relative units are not in this
// table: they need a style context to resolve and are handled
// directly by the lowering functions in package style.
var LengthsToPixels = map[LengthUnit]float64{
	Px: 1,
	Pt: 96. / 72.,
	Pc: 96. / 6.,
	In: 96.,
	Cm: 96. / 2.54,
	Mm: 96. / 2.54 / 10.,
	Q:  96. / 2.54 / 40.,
}

// Length is a dimensioned numeric value, resolvable to absolute
// pixels given a style context.
type Length struct {
	Value float64
	Unit  LengthUnit
}

func (l Length) String() string { return fmt.Sprintf("%g%s", l.Value, l.Unit) }

// ZeroPixels is the zero length, used as the initial value of most
// length-typed properties.
var ZeroPixels = Length{Value: 0, Unit: Px}

// Percentage is a bare `<percentage>` value, stored as written (a
// `20%` token carries Percentage(20), not 0.2).
type Percentage float64

// AutoOr is `auto | T`: the specified-value shape of properties like
// `width`, `margin-top` or `z-index` that accept the `auto` keyword.
// For the `none | T` properties (`max-width`, `max-height`) the same
// shape is reused, with IsAuto standing for the `none` keyword.
type AutoOr[T any] struct {
	IsAuto bool
	Value  T
}

func Auto[T any]() AutoOr[T]       { return AutoOr[T]{IsAuto: true} }
func NotAuto[T any](v T) AutoOr[T] { return AutoOr[T]{Value: v} }

// PercentageOr is `<percentage> | T`: the specified-value shape of
// properties like `padding-top` or the non-auto branch of `width`.
type PercentageOr[T any] struct {
	IsPercentage bool
	Percentage   Percentage
	Value        T
}

func Perc[T any](p Percentage) PercentageOr[T] { return PercentageOr[T]{IsPercentage: true, Percentage: p} }
func NotPerc[T any](v T) PercentageOr[T]       { return PercentageOr[T]{Value: v} }

// Sides is a four-sided value in top/right/bottom/left order, such as
// the used border widths returned by style.ComputedStyle.BorderWidths.
// The four-sides shorthand expanders return a per-longhand map instead.
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// Color is RGBA in the 0..1 range, with a currentColor marker resolved
// at compute time (spec.md §4.5, §9 Open Question ii).
type Color struct {
	R, G, B, A     float64
	IsCurrentColor bool
}

var CurrentColor = Color{IsCurrentColor: true}

func NewColor(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) String() string {
	if c.IsCurrentColor {
		return "currentcolor"
	}
	return fmt.Sprintf("rgba(%g,%g,%g,%g)", c.R, c.G, c.B, c.A)
}

// LineStyle is the specified/computed value of border-style and
// similar line-drawing properties.
type LineStyle uint8

const (
	LineNone LineStyle = iota
	LineHidden
	LineDotted
	LineDashed
	LineSolid
	LineDouble
	LineGroove
	LineRidge
	LineInset
	LineOutset
)

var lineStyleNames = map[string]LineStyle{
	"none": LineNone, "hidden": LineHidden, "dotted": LineDotted,
	"dashed": LineDashed, "solid": LineSolid, "double": LineDouble,
	"groove": LineGroove, "ridge": LineRidge, "inset": LineInset, "outset": LineOutset,
}

func LineStyleFromKeyword(s string) (LineStyle, bool) {
	v, ok := lineStyleNames[s]
	return v, ok
}

// BorderWidthKeyword is the specified form of a border-width before
// lowering; a width given as a plain length skips this and carries a
// Length instead (see LineWidth).
type BorderWidthKeyword uint8

const (
	NotAKeyword BorderWidthKeyword = iota
	Thin
	Medium
	Thick
)

var borderWidthKeywords = map[string]BorderWidthKeyword{"thin": Thin, "medium": Medium, "thick": Thick}

// BorderWidthKeywordPixels is the lowering table for LineWidth
// keywords (spec.md §4.5).
var BorderWidthKeywordPixels = map[BorderWidthKeyword]float64{Thin: 1, Medium: 3, Thick: 5}

func BorderWidthKeywordFrom(s string) (BorderWidthKeyword, bool) {
	v, ok := borderWidthKeywords[s]
	return v, ok
}

// LineWidth is the specified value of a border-width longhand: either
// an explicit Length or one of thin/medium/thick.
type LineWidth struct {
	Keyword BorderWidthKeyword // NotAKeyword means Length is authoritative.
	Length  Length
}

// Border is the up-to-three-component value parsed by the `border`
// and `border-<side>` shorthands (spec.md §4.1 border-family). Each
// component tracks whether it was actually present in the shorthand,
// so the expander can write the given components and reset the
// longhands of the omitted ones to their initial values.
type Border struct {
	Color    Color
	HasColor bool
	Style    LineStyle
	HasStyle bool
	Width    LineWidth
	HasWidth bool
}

// Display is the specified/computed value of the `display` property.
type Display uint8

const (
	DisplayInline Display = iota
	DisplayBlock
	DisplayInlineBlock
	DisplayFlex
	DisplayNone
	DisplayListItem
	DisplayTable
)

var displayNames = map[string]Display{
	"inline": DisplayInline, "block": DisplayBlock, "inline-block": DisplayInlineBlock,
	"flex": DisplayFlex, "none": DisplayNone, "list-item": DisplayListItem, "table": DisplayTable,
}

func DisplayFromKeyword(s string) (Display, bool) { v, ok := displayNames[s]; return v, ok }

// Position is the specified/computed value of the `position` property.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

var positionNames = map[string]Position{
	"static": PositionStatic, "relative": PositionRelative, "absolute": PositionAbsolute,
	"fixed": PositionFixed, "sticky": PositionSticky,
}

func PositionFromKeyword(s string) (Position, bool) { v, ok := positionNames[s]; return v, ok }

// Float is the specified/computed value of the `float` property.
type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

var floatNames = map[string]Float{"none": FloatNone, "left": FloatLeft, "right": FloatRight}

func FloatFromKeyword(s string) (Float, bool) { v, ok := floatNames[s]; return v, ok }

// Clear is the specified/computed value of the `clear` property.
type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

var clearNames = map[string]Clear{"none": ClearNone, "left": ClearLeft, "right": ClearRight, "both": ClearBoth}

func ClearFromKeyword(s string) (Clear, bool) { v, ok := clearNames[s]; return v, ok }

// Cursor is the specified/computed value of the `cursor` property.
type Cursor uint8

const (
	CursorAuto Cursor = iota
	CursorDefault
	CursorPointer
	CursorText
	CursorMove
	CursorWait
	CursorHelp
	CursorNotAllowed
	CursorCrosshair
	CursorGrab
)

var cursorNames = map[string]Cursor{
	"auto": CursorAuto, "default": CursorDefault, "pointer": CursorPointer, "text": CursorText,
	"move": CursorMove, "wait": CursorWait, "help": CursorHelp, "not-allowed": CursorNotAllowed,
	"crosshair": CursorCrosshair, "grab": CursorGrab,
}

func CursorFromKeyword(s string) (Cursor, bool) { v, ok := cursorNames[s]; return v, ok }

// FontStyle is the specified/computed value of `font-style`.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = map[string]FontStyle{"normal": FontStyleNormal, "italic": FontStyleItalic, "oblique": FontStyleOblique}

func FontStyleFromKeyword(s string) (FontStyle, bool) { v, ok := fontStyleNames[s]; return v, ok }

// FontWeightKeyword is the specified form of `font-weight` before a
// numeric weight is resolved against the parent's computed weight.
type FontWeightKeyword uint8

const (
	FontWeightNumber FontWeightKeyword = iota // Number field is authoritative
	FontWeightNormal
	FontWeightBold
	FontWeightBolder
	FontWeightLighter
)

// FontWeight is the specified value of `font-weight`.
type FontWeight struct {
	Keyword FontWeightKeyword
	Number  int // 1..1000, meaningful when Keyword == FontWeightNumber
}

// FontSizeKeyword is one of the seven absolute font-size keywords,
// plus the two relative ones (larger/smaller).
type FontSizeKeyword uint8

const (
	FontSizeNotAKeyword FontSizeKeyword = iota
	FontSizeXXSmall
	FontSizeXSmall
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
	FontSizeLarger
	FontSizeSmaller
)

// FontSizeKeywordPixels gives the absolute pixel size of each
// fixed-size keyword, scaled from a 16px medium; larger/smaller are
// relative to the parent and are not in this table.
var FontSizeKeywordPixels = map[FontSizeKeyword]float64{
	FontSizeXXSmall: 16 * 3 / 5., FontSizeXSmall: 16 * 3 / 4., FontSizeSmall: 16 * 8 / 9.,
	FontSizeMedium: 16, FontSizeLarge: 16 * 6 / 5., FontSizeXLarge: 16 * 3 / 2., FontSizeXXLarge: 16 * 2,
}

var fontSizeKeywordNames = map[string]FontSizeKeyword{
	"xx-small": FontSizeXXSmall, "x-small": FontSizeXSmall, "small": FontSizeSmall,
	"medium": FontSizeMedium, "large": FontSizeLarge, "x-large": FontSizeXLarge, "xx-large": FontSizeXXLarge,
	"larger": FontSizeLarger, "smaller": FontSizeSmaller,
}

func FontSizeKeywordFrom(s string) (FontSizeKeyword, bool) { v, ok := fontSizeKeywordNames[s]; return v, ok }

// FontSize is the specified value of `font-size`.
type FontSize struct {
	Keyword    FontSizeKeyword
	Percentage PercentageOr[Length]
	IsLength   bool // true: the Percentage field holds the length/percentage branch
}

// LineHeight is the specified value of `line-height`.
type LineHeight struct {
	IsNormal bool
	IsNumber bool
	Number   float64
	Length   Length
}

// VerticalAlignKeyword enumerates the keyword branch of `vertical-align`.
type VerticalAlignKeyword uint8

const (
	VerticalAlignNotAKeyword VerticalAlignKeyword = iota
	VerticalAlignBaseline
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTop
	VerticalAlignTextTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextBottom
)

var verticalAlignNames = map[string]VerticalAlignKeyword{
	"baseline": VerticalAlignBaseline, "sub": VerticalAlignSub, "super": VerticalAlignSuper,
	"top": VerticalAlignTop, "text-top": VerticalAlignTextTop, "middle": VerticalAlignMiddle,
	"bottom": VerticalAlignBottom, "text-bottom": VerticalAlignTextBottom,
}

func VerticalAlignFromKeyword(s string) (VerticalAlignKeyword, bool) {
	v, ok := verticalAlignNames[s]
	return v, ok
}

// VerticalAlign is the specified value of `vertical-align`.
type VerticalAlign struct {
	Keyword  VerticalAlignKeyword
	Length   PercentageOr[Length]
	IsLength bool
}

// ListStyleType is the specified/computed value of `list-style-type`.
type ListStyleType uint8

const (
	ListStyleNone ListStyleType = iota
	ListStyleDisc
	ListStyleCircle
	ListStyleSquare
	ListStyleDecimal
	ListStyleDecimalLeadingZero
	ListStyleLowerRoman
	ListStyleUpperRoman
	ListStyleLowerAlpha
	ListStyleUpperAlpha
)

var listStyleNames = map[string]ListStyleType{
	"none": ListStyleNone, "disc": ListStyleDisc, "circle": ListStyleCircle, "square": ListStyleSquare,
	"decimal": ListStyleDecimal, "decimal-leading-zero": ListStyleDecimalLeadingZero,
	"lower-roman": ListStyleLowerRoman, "upper-roman": ListStyleUpperRoman,
	"lower-alpha": ListStyleLowerAlpha, "upper-alpha": ListStyleUpperAlpha,
}

func ListStyleTypeFromKeyword(s string) (ListStyleType, bool) { v, ok := listStyleNames[s]; return v, ok }

// BackgroundImage is the specified/computed value of
// `background-image`: either `none` or an opaque URL (this module
// does not fetch or decode images).
type BackgroundImage struct {
	IsNone bool
	URL    string
}

// BackgroundRepeat is the specified/computed value of `background-repeat`.
type BackgroundRepeat uint8

const (
	BackgroundRepeatBoth BackgroundRepeat = iota
	BackgroundRepeatX
	BackgroundRepeatY
	BackgroundNoRepeat
)

var backgroundRepeatNames = map[string]BackgroundRepeat{
	"repeat": BackgroundRepeatBoth, "repeat-x": BackgroundRepeatX, "repeat-y": BackgroundRepeatY, "no-repeat": BackgroundNoRepeat,
}

func BackgroundRepeatFromKeyword(s string) (BackgroundRepeat, bool) {
	v, ok := backgroundRepeatNames[s]
	return v, ok
}

// BoxSizing is the specified/computed value of `box-sizing`.
type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

func BoxSizingFromKeyword(s string) (BoxSizing, bool) {
	switch s {
	case "content-box":
		return BoxSizingContentBox, true
	case "border-box":
		return BoxSizingBorderBox, true
	}
	return 0, false
}

// Overflow is the specified/computed value of `overflow`.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

var overflowNames = map[string]Overflow{
	"visible": OverflowVisible, "hidden": OverflowHidden, "scroll": OverflowScroll, "auto": OverflowAuto,
}

func OverflowFromKeyword(s string) (Overflow, bool) { v, ok := overflowNames[s]; return v, ok }

// TextAlign is the specified/computed value of `text-align`.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

var textAlignNames = map[string]TextAlign{
	"left": TextAlignLeft, "right": TextAlignRight, "center": TextAlignCenter, "justify": TextAlignJustify,
}

func TextAlignFromKeyword(s string) (TextAlign, bool) { v, ok := textAlignNames[s]; return v, ok }

// Visibility is the specified/computed value of `visibility`.
type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse
)

var visibilityNames = map[string]Visibility{
	"visible": VisibilityVisible, "hidden": VisibilityHidden, "collapse": VisibilityCollapse,
}

func VisibilityFromKeyword(s string) (Visibility, bool) { v, ok := visibilityNames[s]; return v, ok }

// FontFamily is the specified/computed value of `font-family`: an
// ordered list of family names/generic keywords, comma-separated in
// the source.
type FontFamily []string

// Opacity is the specified/computed value of `opacity`, clamped to
// [0, 1] at parse time.
type Opacity float64

// SpecifiedValue is the payload of a SpecifiedProperty: every value
// type above implements it through a no-op marker method, the same
// tagged-union technique the teacher uses for its own CssProperty
// algebra, generalized here to Go's generic container types.
type SpecifiedValue interface{ isSpecifiedValue() }

func (AutoOr[T]) isSpecifiedValue()       {}
func (PercentageOr[T]) isSpecifiedValue() {}
func (Sides[T]) isSpecifiedValue()        {}
func (Length) isSpecifiedValue()          {}
func (Color) isSpecifiedValue()           {}
func (LineStyle) isSpecifiedValue()       {}
func (LineWidth) isSpecifiedValue()       {}
func (Border) isSpecifiedValue()          {}
func (Display) isSpecifiedValue()         {}
func (Position) isSpecifiedValue()        {}
func (Float) isSpecifiedValue()           {}
func (Clear) isSpecifiedValue()           {}
func (Cursor) isSpecifiedValue()          {}
func (FontStyle) isSpecifiedValue()       {}
func (FontWeight) isSpecifiedValue()      {}
func (FontSize) isSpecifiedValue()        {}
func (LineHeight) isSpecifiedValue()      {}
func (VerticalAlign) isSpecifiedValue()   {}
func (ListStyleType) isSpecifiedValue()   {}
func (BackgroundImage) isSpecifiedValue() {}
func (BackgroundRepeat) isSpecifiedValue() {}
func (BoxSizing) isSpecifiedValue()       {}
func (Overflow) isSpecifiedValue()        {}
func (TextAlign) isSpecifiedValue()       {}
func (Visibility) isSpecifiedValue()      {}
func (FontFamily) isSpecifiedValue()      {}
func (Opacity) isSpecifiedValue()         {}
func (JustifySelf) isSpecifiedValue()     {}

// JustifySelf is the specified/computed value of `justify-self`, using
// the CSS Box Alignment keyword set (grounded on the teacher's
// css/properties/keywords package, which models the same keyword
// family for `align-self`/`justify-content`).
type JustifySelf uint8

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfStretch
	JustifySelfBaseline
	JustifySelfSelfStart
	JustifySelfSelfEnd
	JustifySelfFlexStart
	JustifySelfFlexEnd
	JustifySelfLeft
	JustifySelfRight
)

var justifySelfNames = map[string]JustifySelf{
	"auto": JustifySelfAuto, "start": JustifySelfStart, "end": JustifySelfEnd,
	"center": JustifySelfCenter, "stretch": JustifySelfStretch, "baseline": JustifySelfBaseline,
	"self-start": JustifySelfSelfStart, "self-end": JustifySelfSelfEnd,
	"flex-start": JustifySelfFlexStart, "flex-end": JustifySelfFlexEnd,
	"left": JustifySelfLeft, "right": JustifySelfRight,
}

func JustifySelfFromKeyword(s string) (JustifySelf, bool) { v, ok := justifySelfNames[s]; return v, ok }

// CSSWideKeyword is `inherit | initial`, applicable to any longhand
// regardless of its value type (spec.md §4.5, §6).
type CSSWideKeyword uint8

const (
	NoCSSWideKeyword CSSWideKeyword = iota
	Inherit
	Initial
)

// SpecifiedProperty is the tagged union described in spec.md §3: one
// variant per longhand plus one per shorthand, realized here as a
// single struct whose active field depends on IsShorthand and
// Keyword, rather than as a closed sum of N Go types — the registry
// in properties.go is the single source of truth for which KnownProp
// or Shorthand a given instance belongs to.
type SpecifiedProperty struct {
	IsShorthand bool
	Prop        KnownProp  // meaningful when !IsShorthand
	Shorthand   Shorthand  // meaningful when IsShorthand
	Keyword     CSSWideKeyword
	Value       SpecifiedValue // nil when Keyword != NoCSSWideKeyword
}

// Declaration is an immutable parsed property assignment, ready to be
// applied to a ComputedStyle.
type Declaration struct {
	Property  SpecifiedProperty
	Important bool
}
