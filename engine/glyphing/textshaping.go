/*
Package glyphing defines the contract between text shapers and their
clients, e.g. line wrapping and cursor positioning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"fmt"

	"github.com/npillmayer/tinytype/core/dimen"
)

// GlyphIndex is the index of a glyph within a font.
type GlyphIndex uint16

// NoGlyph is the glyph index of characters without a glyph.
const NoGlyph GlyphIndex = 0

// A ShapedGlyph lives in device space.
//
// Shapers produce exactly one ShapedGlyph per input character. Characters
// for which a font has no glyph result in a ShapedGlyph with zero metrics
// and glyph index NoGlyph.
type ShapedGlyph struct {
	ClusterID int        // byte position of the code-point for this glyph in the original string
	XAdvance  dimen.PX   // advance after glyph has been set
	Width     dimen.PX   // width of the glyph's bitmap
	Height    dimen.PX   // height of the glyph's bitmap
	GID       GlyphIndex // glyph index within font
	CodePoint rune       // code-point to produce this glyph
}

// HasGlyph returns true if a font provided a glyph for g.
func (g ShapedGlyph) HasGlyph() bool {
	return g.GID != NoGlyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(%q@%d GID=%d, advance=%s)", g.CodePoint, g.ClusterID, g.GID, g.XAdvance)
}

// A TextShaper creates a sequence of glyphs from a string.
//
// ShapeText appends the shaped glyphs for text to glyphs and returns the
// extended slice, as append does. Clients wishing to avoid allocation
// provide a buffer with sufficient capacity.
type TextShaper interface {
	ShapeText(text string, glyphs []ShapedGlyph) []ShapedGlyph
}

// Advance returns the sum of advances of a run of glyphs.
func Advance(glyphs []ShapedGlyph) dimen.PX {
	var w dimen.PX
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}
