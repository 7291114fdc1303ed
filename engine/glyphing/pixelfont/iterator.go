package pixelfont

import (
	"unicode/utf8"

	"github.com/npillmayer/tinytype/core/dimen"
)

// GlyphIterator iterates over the glyphs of a text, together with their
// pen positions. Characters without a glyph are skipped, but advance the
// pen position by the font's pixel size.
//
// Iteration is single-pass; call GlyphsForText again to restart.
//
//     it := pf.GlyphsForText("Hello")
//     for it.Next() {
//         draw(it.X(), it.Glyph())
//     }
//
type GlyphIterator struct {
	font  PixelFont
	text  string
	pos   int      // byte position of next character
	pen   dimen.PX // pen position after the current glyph
	x     dimen.PX // pen position of the current glyph
	glyph Glyph
}

// GlyphsForText creates an iterator over the glyphs for text.
// Invalid UTF-8 is treated as U+FFFD, one character per invalid byte.
func (pf PixelFont) GlyphsForText(text string) GlyphIterator {
	return GlyphIterator{font: pf, text: text}
}

// Next moves to the next character which has a glyph. It returns false if
// the text is exhausted.
func (it *GlyphIterator) Next() bool {
	for it.pos < len(it.text) {
		r, size := utf8.DecodeRuneInString(it.text[it.pos:])
		it.pos += size
		if g, _, ok := it.font.Lookup(r); ok {
			it.x = it.pen
			it.glyph = g
			it.pen += g.XAdvance()
			return true
		}
		it.pen += it.font.PixelSize()
	}
	it.glyph = Glyph{}
	return false
}

// X returns the pen position of the current glyph.
func (it *GlyphIterator) X() dimen.PX {
	return it.x
}

// Glyph returns the current glyph.
func (it *GlyphIterator) Glyph() Glyph {
	return it.glyph
}

// Pen returns the pen position after the characters consumed so far.
// After iteration has finished, this is the advance of the whole text.
func (it *GlyphIterator) Pen() dimen.PX {
	return it.pen
}
