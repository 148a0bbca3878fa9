// Package style implements the Computed Value Lowering and Style
// Tree components: the StyleContext a declaration is lowered against,
// and the ComputedStyle itself with copy-on-write inheritance groups.
package style

// Context carries the handful of values a specified-to-computed
// lowering needs beyond the element's own declarations: the parent's
// computed font size (for font-size's own em and percentage values),
// the root element's computed font size (for rem), and the viewport
// size (for vw/vh). Grounded on
// original_source/crates/web/core/src/css/values/length.rs's
// ResolutionContext{font_size, root_font_size, viewport}, which this
// type extends with the parent's computed font weight (for
// bolder/lighter). The element's own font size, against which its
// other em-based properties resolve, is not part of Context: Lower
// takes it as a separate argument.
type Context struct {
	ParentFontSizePx float64
	RootFontSizePx   float64
	ParentFontWeight int
	ViewportWidthPx  float64
	ViewportHeightPx float64
}

// DefaultContext is the style context for the root element: no
// parent, so ParentFontSizePx and RootFontSizePx both fall back to
// the UA default medium font size (16px, per
// css/properties/types.go's FontSizeKeywordPixels).
func DefaultContext(viewportWidthPx, viewportHeightPx float64) Context {
	return Context{
		ParentFontSizePx: 16,
		RootFontSizePx:   16,
		ParentFontWeight: 400,
		ViewportWidthPx:  viewportWidthPx,
		ViewportHeightPx: viewportHeightPx,
	}
}

// ForChild returns the context a child element's declarations should
// be lowered against, given this element's own just-computed font
// size and font weight.
func (c Context) ForChild(ownFontSizePx float64, ownFontWeight int) Context {
	c.ParentFontSizePx = ownFontSizePx
	c.ParentFontWeight = ownFontWeight
	return c
}
