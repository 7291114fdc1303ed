package pixelfont

import (
	"github.com/npillmayer/tinytype/engine/glyphing"
)

var _ glyphing.TextShaper = PixelFont{}

// ShapeText appends one shaped glyph per character of text to glyphs.
// Characters without a glyph result in a glyph with zero metrics and
// glyph index glyphing.NoGlyph. Every glyph carries the byte position of
// its character as ClusterID.
//
// If glyphs has sufficient capacity, ShapeText does not allocate.
func (pf PixelFont) ShapeText(text string, glyphs []glyphing.ShapedGlyph) []glyphing.ShapedGlyph {
	for i, r := range text {
		out := glyphing.ShapedGlyph{ClusterID: i, CodePoint: r}
		if g, gid, ok := pf.Lookup(r); ok {
			out.Width = g.Width()
			out.Height = g.Height()
			out.XAdvance = g.XAdvance()
			out.GID = gid
		}
		glyphs = append(glyphs, out)
	}
	return glyphs
}
