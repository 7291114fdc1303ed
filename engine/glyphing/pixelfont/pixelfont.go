package pixelfont

import (
	"cmp"
	"image"
	"slices"

	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/engine/glyphing"
)

// PixelFont is a bitmap font resolved to a specific pixel size.
type PixelFont struct {
	bitmapFont *font.BitmapFont
	glyphs     *font.BitmapGlyphs
}

// Font returns the bitmap font pf has been resolved from.
func (pf PixelFont) Font() *font.BitmapFont {
	return pf.bitmapFont
}

// Variant returns the glyphs of the pixel size pf has been resolved to.
func (pf PixelFont) Variant() *font.BitmapGlyphs {
	return pf.glyphs
}

// PixelSize is the size the glyphs of pf have been rasterized at.
func (pf PixelFont) PixelSize() dimen.PX {
	return dimen.PX(pf.glyphs.PixelSize)
}

// Ascent returns the distance from the top of a line to the baseline.
func (pf PixelFont) Ascent() dimen.PX {
	return pf.scale(int32(pf.bitmapFont.Ascent))
}

// Height returns the height of a line. The descent is negative
// (relative to the baseline).
func (pf PixelFont) Height() dimen.PX {
	return pf.scale(int32(pf.bitmapFont.Ascent) - int32(pf.bitmapFont.Descent))
}

// scale converts design units to device pixels. Division truncates toward
// zero, for ascent and height alike.
func (pf PixelFont) scale(units int32) dimen.PX {
	if pf.bitmapFont.UnitsPerEm == 0 {
		return 0
	}
	return dimen.PX(int32(pf.glyphs.PixelSize) * units / int32(pf.bitmapFont.UnitsPerEm))
}

// Lookup finds the glyph for a code-point by binary search of the
// character map.
func (pf PixelFont) Lookup(r rune) (Glyph, glyphing.GlyphIndex, bool) {
	cmap := pf.bitmapFont.CharacterMap
	i, found := slices.BinarySearchFunc(cmap, r, func(e font.CharacterMapEntry, r rune) int {
		return cmp.Compare(e.CodePoint, r)
	})
	if !found {
		return Glyph{}, glyphing.NoGlyph, false
	}
	gid := cmap[i].GlyphIndex
	if int(gid) >= len(pf.glyphs.GlyphData) { // malformed font
		return Glyph{}, glyphing.NoGlyph, false
	}
	return Glyph{&pf.glyphs.GlyphData[gid]}, glyphing.GlyphIndex(gid), true
}

// --- Glyphs ----------------------------------------------------------------

// Glyph is a read-only view of a bitmap glyph. The zero value is not a valid
// glyph.
type Glyph struct {
	g *font.BitmapGlyph
}

// X is the horizontal offset of the bitmap from the pen position.
func (g Glyph) X() dimen.PX {
	return dimen.PX(g.g.X)
}

// Y is the offset of the bitmap's bottom edge from the baseline, positive upwards.
func (g Glyph) Y() dimen.PX {
	return dimen.PX(g.g.Y)
}

// Width of the glyph bitmap.
func (g Glyph) Width() dimen.PX {
	return dimen.PX(g.g.Width)
}

// Height of the glyph bitmap.
func (g Glyph) Height() dimen.PX {
	return dimen.PX(g.g.Height)
}

// Size of the glyph bitmap.
func (g Glyph) Size() dimen.PhysicalSize {
	return dimen.PhysicalSize{W: g.Width(), H: g.Height()}
}

// XAdvance is the advance of the pen position after drawing the glyph.
func (g Glyph) XAdvance() dimen.PX {
	return dimen.PX(g.g.XAdvance)
}

// Data returns the coverage bitmap of the glyph. Clients must not modify it.
func (g Glyph) Data() []byte {
	return g.g.Data
}

// Mask returns the bitmap as an alpha image, sharing memory with Data.
// The image's origin is the top-left corner of the bitmap.
func (g Glyph) Mask() *image.Alpha {
	w, h := int(g.g.Width), int(g.g.Height)
	return &image.Alpha{
		Pix:    g.g.Data,
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}
