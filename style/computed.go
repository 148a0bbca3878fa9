package style

import (
	pr "github.com/stormlicht/style/css/properties"
	"github.com/stormlicht/style/stylelog"
)

// InheritedData and NonInheritedData hold the computed value of every
// longhand in their respective group (spec.md §3 invariant 2), keyed
// by pr.KnownProp rather than one struct field per longhand: the
// property registry is already the single source of truth for which
// longhands exist and which group they belong to (properties.go's
// Inherited set), so a typed struct field per longhand would just
// restate that table a second time. Values are stored in their
// computed (lowered) shape.
type InheritedData struct {
	values map[pr.KnownProp]pr.SpecifiedValue
}

type NonInheritedData struct {
	values map[pr.KnownProp]pr.SpecifiedValue
}

func (d *InheritedData) clone() *InheritedData {
	out := make(map[pr.KnownProp]pr.SpecifiedValue, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return &InheritedData{values: out}
}

func (d *NonInheritedData) clone() *NonInheritedData {
	out := make(map[pr.KnownProp]pr.SpecifiedValue, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return &NonInheritedData{values: out}
}

// ComputedStyle is the computed value store for one element (spec.md
// §3, §4.5). Its inherited group is shared copy-on-write with the
// parent element's ComputedStyle: InheritFrom aliases that pointer and
// clears the child's ownsInherited flag, so the child's first write to
// an inherited longhand clones the group before mutating it. The
// non-inherited group is never shared; InheritFrom builds a fresh one.
type ComputedStyle struct {
	inherited    *InheritedData
	nonInherited *NonInheritedData
	ownsInherited    bool
	ownsNonInherited bool

	fontSizePx   float64 // cached own computed font-size, for em resolution of sibling properties
	fontWeight   int     // cached own computed font-weight, for descendants' bolder/lighter
}

// Default returns the computed style of a root element: every
// longhand lowered from its registry initial value (spec.md §8
// invariant 1), under ctx.
func Default(ctx Context) *ComputedStyle {
	cs := &ComputedStyle{
		inherited:        &InheritedData{values: map[pr.KnownProp]pr.SpecifiedValue{}},
		nonInherited:     &NonInheritedData{values: map[pr.KnownProp]pr.SpecifiedValue{}},
		ownsInherited:    true,
		ownsNonInherited: true,
		fontSizePx:       16,
		fontWeight:       400,
	}
	cs.setLowered(pr.PFontSize, Lower(pr.PFontSize, pr.InitialValues[pr.PFontSize], ctx, cs.fontSizePx), ctx)
	cs.setLowered(pr.PFontWeight, Lower(pr.PFontWeight, pr.InitialValues[pr.PFontWeight], ctx, cs.fontSizePx), ctx)
	cs.setLowered(pr.PColor, Lower(pr.PColor, pr.InitialValues[pr.PColor], ctx, cs.fontSizePx), ctx)
	for prop, v := range pr.InitialValues {
		if prop == pr.PFontSize || prop == pr.PFontWeight || prop == pr.PColor {
			continue
		}
		cs.setLowered(prop, resolveCurrentColor(cs, prop, Lower(prop, v, ctx, cs.fontSizePx)), ctx)
	}
	return cs
}

// InheritFrom returns the computed style of a child element, sharing
// parent's inherited group by pointer (spec.md §3 invariant 2) and
// starting its non-inherited group fresh from the registry's initial
// values, per CSS inheritance semantics.
func InheritFrom(parent *ComputedStyle, ctx Context) *ComputedStyle {
	cs := &ComputedStyle{
		inherited:        parent.inherited,
		nonInherited:     &NonInheritedData{values: map[pr.KnownProp]pr.SpecifiedValue{}},
		ownsInherited:    false,
		ownsNonInherited: true,
		fontSizePx:       parent.fontSizePx,
		fontWeight:       parent.fontWeight,
	}
	for prop, v := range pr.InitialValues {
		if pr.Inherited[prop] {
			continue
		}
		cs.setLowered(prop, resolveCurrentColor(cs, prop, Lower(prop, v, ctx, cs.fontSizePx)), ctx)
	}
	return cs
}

func (cs *ComputedStyle) ensureOwnInherited() {
	if !cs.ownsInherited {
		cs.inherited = cs.inherited.clone()
		cs.ownsInherited = true
	}
}

func (cs *ComputedStyle) ensureOwnNonInherited() {
	if !cs.ownsNonInherited {
		cs.nonInherited = cs.nonInherited.clone()
		cs.ownsNonInherited = true
	}
}

func (cs *ComputedStyle) group(prop pr.KnownProp) map[pr.KnownProp]pr.SpecifiedValue {
	if pr.Inherited[prop] {
		return cs.inherited.values
	}
	return cs.nonInherited.values
}

// Get returns the already-computed value of prop, or false if no
// longhand has ever been written for it (which should not happen once
// Default/InheritFrom has run, since both seed every longhand).
func (cs *ComputedStyle) Get(prop pr.KnownProp) (pr.SpecifiedValue, bool) {
	v, ok := cs.group(prop)[prop]
	return v, ok
}

// setLowered writes an already-computed value directly, cloning the
// owning group first if it is still shared with an ancestor.
func (cs *ComputedStyle) setLowered(prop pr.KnownProp, v pr.SpecifiedValue, ctx Context) {
	if pr.Inherited[prop] {
		cs.ensureOwnInherited()
	} else {
		cs.ensureOwnNonInherited()
	}
	cs.group(prop)[prop] = v
	switch prop {
	case pr.PFontSize:
		cs.fontSizePx = v.(pr.FontSize).Percentage.Value.Value
	case pr.PFontWeight:
		cs.fontWeight = v.(pr.FontWeight).Number
	}
}

// SetLonghand applies one resolved longhand declaration (spec.md
// §4.5): lowers the specified value (or substitutes the parent's
// computed value / the registry's initial value for the `inherit`/
// `initial` wide keywords, per spec.md §6), resolves currentColor
// against this element's own computed color (DESIGN.md Open Question
// ii), and writes the result.
func (cs *ComputedStyle) SetLonghand(prop pr.KnownProp, keyword pr.CSSWideKeyword, specified pr.SpecifiedValue, parent *ComputedStyle, ctx Context) {
	var lowered pr.SpecifiedValue
	switch {
	case keyword == pr.Inherit && parent != nil:
		if v, ok := parent.Get(prop); ok {
			lowered = v
		} else {
			lowered = Lower(prop, pr.InitialValues[prop], ctx, cs.fontSizePx)
		}
	case keyword == pr.Inherit || keyword == pr.Initial:
		lowered = Lower(prop, pr.InitialValues[prop], ctx, cs.fontSizePx)
	default:
		lowered = Lower(prop, specified, ctx, cs.fontSizePx)
	}

	cs.setLowered(prop, resolveCurrentColor(cs, prop, lowered), ctx)
}

// resolveCurrentColor substitutes cs's own computed color for a
// currentColor marker (DESIGN.md Open Question ii), the one resolution
// step shared by SetLonghand and by Default/InheritFrom's initial-value
// lowering, since a longhand's initial value can itself be currentColor
// (the four border-*-color longhands).
func resolveCurrentColor(cs *ComputedStyle, prop pr.KnownProp, lowered pr.SpecifiedValue) pr.SpecifiedValue {
	if c, ok := lowered.(pr.Color); ok && c.IsCurrentColor && prop != pr.PColor {
		return cs.Color()
	}
	return lowered
}

// Color resolves `color`'s own value; `color` can itself be
// `currentColor`-initial only transiently (its registry initial value
// is opaque black, never the marker), so this never recurses.
func (cs *ComputedStyle) Color() pr.Color {
	v, _ := cs.Get(pr.PColor)
	c, _ := v.(pr.Color)
	return c
}

// FontSizePx is this element's own computed font size in pixels, the
// basis against which its own em-valued properties (other than
// font-size itself) resolve.
func (cs *ComputedStyle) FontSizePx() float64 { return cs.fontSizePx }

// FontWeightNumber is this element's own resolved numeric font weight
// (1..1000), the basis against which a descendant's bolder/lighter
// resolves.
func (cs *ComputedStyle) FontWeightNumber() int { return cs.fontWeight }

func (cs *ComputedStyle) lineWidthPx(prop pr.KnownProp) float64 {
	v, _ := cs.Get(prop)
	lw, _ := v.(pr.LineWidth)
	return lw.Length.Value
}

func (cs *ComputedStyle) lineStyle(prop pr.KnownProp) pr.LineStyle {
	v, _ := cs.Get(prop)
	ls, _ := v.(pr.LineStyle)
	return ls
}

// BorderWidths returns the four used border widths, each forced to
// zero when its side's border-style is none/hidden (spec.md §4.5/§8,
// ported from original_source/crates/web/src/css/computed_style.rs's
// used_border_widths(), doubly grounded on the teacher's
// borderWidth() cross-property computer).
func (cs *ComputedStyle) BorderWidths() pr.Sides[float64] {
	widthOf := func(width, style pr.KnownProp) float64 {
		s := cs.lineStyle(style)
		if s == pr.LineNone || s == pr.LineHidden {
			return 0
		}
		return cs.lineWidthPx(width)
	}
	return pr.Sides[float64]{
		Top:    widthOf(pr.PBorderTopWidth, pr.PBorderTopStyle),
		Right:  widthOf(pr.PBorderRightWidth, pr.PBorderRightStyle),
		Bottom: widthOf(pr.PBorderBottomWidth, pr.PBorderBottomStyle),
		Left:   widthOf(pr.PBorderLeftWidth, pr.PBorderLeftStyle),
	}
}

// BorderColor returns the resolved (non-currentColor) color of one
// border side; prop must be one of the four PBorder*Color constants.
func (cs *ComputedStyle) BorderColor(prop pr.KnownProp) pr.Color {
	v, _ := cs.Get(prop)
	c, _ := v.(pr.Color)
	return c
}

// Width, Height, MarginTop and the other box-edge accessors return the
// computed AutoOr[PercentageOr[Length]] value unchanged: per
// DESIGN.md's Open Question (iii) decision, percentages are kept
// symbolic since no containing block is known to this component.
func (cs *ComputedStyle) Width() pr.AutoOr[pr.PercentageOr[pr.Length]]  { return cs.box(pr.PWidth) }
func (cs *ComputedStyle) Height() pr.AutoOr[pr.PercentageOr[pr.Length]] { return cs.box(pr.PHeight) }

func (cs *ComputedStyle) MarginTop() pr.AutoOr[pr.PercentageOr[pr.Length]]    { return cs.box(pr.PMarginTop) }
func (cs *ComputedStyle) MarginRight() pr.AutoOr[pr.PercentageOr[pr.Length]]  { return cs.box(pr.PMarginRight) }
func (cs *ComputedStyle) MarginBottom() pr.AutoOr[pr.PercentageOr[pr.Length]] { return cs.box(pr.PMarginBottom) }
func (cs *ComputedStyle) MarginLeft() pr.AutoOr[pr.PercentageOr[pr.Length]]   { return cs.box(pr.PMarginLeft) }

func (cs *ComputedStyle) box(prop pr.KnownProp) pr.AutoOr[pr.PercentageOr[pr.Length]] {
	v, _ := cs.Get(prop)
	b, _ := v.(pr.AutoOr[pr.PercentageOr[pr.Length]])
	return b
}

func (cs *ComputedStyle) PaddingTop() pr.PercentageOr[pr.Length]    { return cs.padding(pr.PPaddingTop) }
func (cs *ComputedStyle) PaddingRight() pr.PercentageOr[pr.Length]  { return cs.padding(pr.PPaddingRight) }
func (cs *ComputedStyle) PaddingBottom() pr.PercentageOr[pr.Length] { return cs.padding(pr.PPaddingBottom) }
func (cs *ComputedStyle) PaddingLeft() pr.PercentageOr[pr.Length]   { return cs.padding(pr.PPaddingLeft) }

func (cs *ComputedStyle) padding(prop pr.KnownProp) pr.PercentageOr[pr.Length] {
	v, _ := cs.Get(prop)
	p, _ := v.(pr.PercentageOr[pr.Length])
	return p
}

// typed type-asserts the already-computed value of prop to T, the
// shared helper behind the keyword/scalar accessors below (box/
// padding/lineStyle predate it and keep their own shape).
func typed[T pr.SpecifiedValue](cs *ComputedStyle, prop pr.KnownProp) T {
	v, _ := cs.Get(prop)
	t, _ := v.(T)
	return t
}

func (cs *ComputedStyle) Display() pr.Display       { return typed[pr.Display](cs, pr.PDisplay) }
func (cs *ComputedStyle) Position() pr.Position      { return typed[pr.Position](cs, pr.PPosition) }
func (cs *ComputedStyle) Float() pr.Float            { return typed[pr.Float](cs, pr.PFloat) }
func (cs *ComputedStyle) Clear() pr.Clear            { return typed[pr.Clear](cs, pr.PClear) }
func (cs *ComputedStyle) Cursor() pr.Cursor          { return typed[pr.Cursor](cs, pr.PCursor) }
func (cs *ComputedStyle) FontStyle() pr.FontStyle    { return typed[pr.FontStyle](cs, pr.PFontStyle) }
func (cs *ComputedStyle) Overflow() pr.Overflow      { return typed[pr.Overflow](cs, pr.POverflow) }
func (cs *ComputedStyle) Visibility() pr.Visibility  { return typed[pr.Visibility](cs, pr.PVisibility) }
func (cs *ComputedStyle) BoxSizing() pr.BoxSizing    { return typed[pr.BoxSizing](cs, pr.PBoxSizing) }
func (cs *ComputedStyle) JustifySelf() pr.JustifySelf {
	return typed[pr.JustifySelf](cs, pr.PJustifySelf)
}
func (cs *ComputedStyle) ListStyleType() pr.ListStyleType {
	return typed[pr.ListStyleType](cs, pr.PListStyleType)
}
func (cs *ComputedStyle) Opacity() pr.Opacity    { return typed[pr.Opacity](cs, pr.POpacity) }
func (cs *ComputedStyle) ZIndex() pr.AutoOr[int] { return typed[pr.AutoOr[int]](cs, pr.PZIndex) }
func (cs *ComputedStyle) BackgroundColor() pr.Color {
	return typed[pr.Color](cs, pr.PBackgroundColor)
}
func (cs *ComputedStyle) BackgroundImage() pr.BackgroundImage {
	return typed[pr.BackgroundImage](cs, pr.PBackgroundImage)
}
func (cs *ComputedStyle) BackgroundRepeat() pr.BackgroundRepeat {
	return typed[pr.BackgroundRepeat](cs, pr.PBackgroundRepeat)
}
func (cs *ComputedStyle) FontFamily() pr.FontFamily { return typed[pr.FontFamily](cs, pr.PFontFamily) }
func (cs *ComputedStyle) LineHeight() pr.LineHeight { return typed[pr.LineHeight](cs, pr.PLineHeight) }
func (cs *ComputedStyle) VerticalAlign() pr.VerticalAlign {
	return typed[pr.VerticalAlign](cs, pr.PVerticalAlign)
}
func (cs *ComputedStyle) TextAlign() pr.TextAlign { return typed[pr.TextAlign](cs, pr.PTextAlign) }

func warnUnknownProperty(name string, err error) {
	stylelog.Warning.Printf("dropping declaration %q: %v", name, err)
}
