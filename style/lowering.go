package style

import pr "github.com/stormlicht/style/css/properties"

// Lower converts one longhand's specified value into its computed
// form (spec.md §4.5): absolute/font-relative/viewport-relative
// lengths resolve to pixels, border-width keywords resolve to
// pixels, font-size resolves to an absolute pixel length, font-weight
// keywords resolve to a number. Percentages are left symbolic
// (DESIGN.md Open Question iii); keyword-only properties pass
// through unchanged. ownFontSizePx is this element's own computed
// font size, the basis against which its non-font-size em lengths
// resolve (font-size's own em/percentage resolves against the
// *parent's* font size instead, carried in ctx).
func Lower(prop pr.KnownProp, v pr.SpecifiedValue, ctx Context, ownFontSizePx float64) pr.SpecifiedValue {
	switch prop {
	case pr.PFontSize:
		return lowerFontSize(v.(pr.FontSize), ctx)
	case pr.PFontWeight:
		return lowerFontWeight(v.(pr.FontWeight), ctx)

	case pr.PBottom, pr.PLeft, pr.PRight, pr.PTop, pr.PWidth, pr.PHeight,
		pr.PMarginTop, pr.PMarginRight, pr.PMarginBottom, pr.PMarginLeft,
		pr.PMaxWidth, pr.PMaxHeight:
		return lowerAutoPercentageOrLength(v.(pr.AutoOr[pr.PercentageOr[pr.Length]]), ctx, ownFontSizePx)

	case pr.PMinWidth, pr.PMinHeight,
		pr.PPaddingTop, pr.PPaddingRight, pr.PPaddingBottom, pr.PPaddingLeft:
		return lowerPercentageOrLength(v.(pr.PercentageOr[pr.Length]), ctx, ownFontSizePx)

	case pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth:
		return lowerLineWidth(v.(pr.LineWidth), ctx, ownFontSizePx)

	case pr.PLineHeight:
		lh := v.(pr.LineHeight)
		if lh.IsNormal || lh.IsNumber {
			return lh
		}
		return pr.LineHeight{Length: lowerLength(lh.Length, ctx, ownFontSizePx)}

	case pr.PVerticalAlign:
		va := v.(pr.VerticalAlign)
		if !va.IsLength {
			return va
		}
		return pr.VerticalAlign{IsLength: true, Length: lowerPercentageOrLength(va.Length, ctx, ownFontSizePx)}

	default:
		return v
	}
}

func lowerLength(l pr.Length, ctx Context, ownFontSizePx float64) pr.Length {
	switch l.Unit {
	case pr.Px:
		return l
	case pr.Em:
		return px(l.Value * ownFontSizePx)
	case pr.Rem:
		return px(l.Value * ctx.RootFontSizePx)
	case pr.Vw:
		return px(l.Value / 100 * ctx.ViewportWidthPx)
	case pr.Vh:
		return px(l.Value / 100 * ctx.ViewportHeightPx)
	default:
		if factor, ok := pr.LengthsToPixels[l.Unit]; ok {
			return px(l.Value * factor)
		}
		return l
	}
}

func px(v float64) pr.Length { return pr.Length{Value: v, Unit: pr.Px} }

func lowerPercentageOrLength(p pr.PercentageOr[pr.Length], ctx Context, ownFontSizePx float64) pr.PercentageOr[pr.Length] {
	if p.IsPercentage {
		return p
	}
	return pr.NotPerc[pr.Length](lowerLength(p.Value, ctx, ownFontSizePx))
}

func lowerAutoPercentageOrLength(a pr.AutoOr[pr.PercentageOr[pr.Length]], ctx Context, ownFontSizePx float64) pr.AutoOr[pr.PercentageOr[pr.Length]] {
	if a.IsAuto {
		return a
	}
	return pr.NotAuto(lowerPercentageOrLength(a.Value, ctx, ownFontSizePx))
}

func lowerLineWidth(lw pr.LineWidth, ctx Context, ownFontSizePx float64) pr.LineWidth {
	if lw.Keyword != pr.NotAKeyword {
		return pr.LineWidth{Length: px(pr.BorderWidthKeywordPixels[lw.Keyword])}
	}
	return pr.LineWidth{Length: lowerLength(lw.Length, ctx, ownFontSizePx)}
}

// lowerFontSize resolves every font-size branch to an absolute pixel
// length: keyword sizes from the fixed table, larger/smaller and
// percentage/em relative to the parent's font size (ctx), rem to the
// root's font size, and vw/vh to the viewport — matching
// original_source/.../values/length.rs's Unit arms.
func lowerFontSize(fs pr.FontSize, ctx Context) pr.FontSize {
	var pxVal float64
	switch {
	case fs.IsLength:
		switch {
		case fs.Percentage.IsPercentage:
			pxVal = ctx.ParentFontSizePx * float64(fs.Percentage.Percentage) / 100
		default:
			pxVal = resolveFontRelative(fs.Percentage.Value, ctx)
		}
	case fs.Keyword == pr.FontSizeLarger:
		pxVal = ctx.ParentFontSizePx * 1.2
	case fs.Keyword == pr.FontSizeSmaller:
		pxVal = ctx.ParentFontSizePx / 1.2
	default:
		pxVal = pr.FontSizeKeywordPixels[fs.Keyword]
	}
	return pr.FontSize{IsLength: true, Percentage: pr.NotPerc[pr.Length](px(pxVal))}
}

// resolveFontRelative is lowerLength specialized for font-size's own
// length branch, where em/% resolve against the *parent's* font size
// rather than the element's own (not yet known) font size.
func resolveFontRelative(l pr.Length, ctx Context) float64 {
	switch l.Unit {
	case pr.Em:
		return l.Value * ctx.ParentFontSizePx
	case pr.Rem:
		return l.Value * ctx.RootFontSizePx
	case pr.Vw:
		return l.Value / 100 * ctx.ViewportWidthPx
	case pr.Vh:
		return l.Value / 100 * ctx.ViewportHeightPx
	case pr.Px:
		return l.Value
	default:
		if factor, ok := pr.LengthsToPixels[l.Unit]; ok {
			return l.Value * factor
		}
		return l.Value
	}
}

// bolderOf and lighterOf implement the UA-defined relative font-weight
// steps, grounded on the teacher's fontWeightRelative table
// (html/tree/computed_values.go) and CSS Fonts Level 4 §font-weight.
func bolderOf(w int) int {
	switch {
	case w < 400:
		return 400
	case w < 600:
		return 700
	default:
		return 900
	}
}

func lighterOf(w int) int {
	switch {
	case w < 600:
		return 100
	case w < 800:
		return 400
	default:
		return 700
	}
}

func lowerFontWeight(fw pr.FontWeight, ctx Context) pr.FontWeight {
	switch fw.Keyword {
	case pr.FontWeightNumber:
		return fw
	case pr.FontWeightNormal:
		return pr.FontWeight{Keyword: pr.FontWeightNumber, Number: 400}
	case pr.FontWeightBold:
		return pr.FontWeight{Keyword: pr.FontWeightNumber, Number: 700}
	case pr.FontWeightBolder:
		return pr.FontWeight{Keyword: pr.FontWeightNumber, Number: bolderOf(ctx.ParentFontWeight)}
	case pr.FontWeightLighter:
		return pr.FontWeight{Keyword: pr.FontWeightNumber, Number: lighterOf(ctx.ParentFontWeight)}
	}
	return fw
}
