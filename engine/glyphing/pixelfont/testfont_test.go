package pixelfont

import (
	"github.com/npillmayer/tinytype/core/font"
)

// newTestFont creates a font with variants at 8, 12 and 16 pixels.
// 'H' advances 10px and 'i' 4px at 12 pixels.
func newTestFont(family string) *font.BitmapFont {
	variant := func(size int16, hAdv, iAdv, spAdv int16) font.BitmapGlyphs {
		return font.BitmapGlyphs{
			PixelSize: size,
			GlyphData: []font.BitmapGlyph{
				{},
				{X: 1, Y: 0, Width: 2, Height: 2, XAdvance: hAdv, Data: []byte{255, 0, 0, 255}}, // H
				{X: 0, Y: 0, Width: 1, Height: 2, XAdvance: iAdv, Data: []byte{128, 128}},      // i
				{X: 0, Y: -1, Width: 1, Height: 3, XAdvance: iAdv, Data: []byte{1, 2, 3}},      // é
				{XAdvance: spAdv}, // space
			},
		}
	}
	return &font.BitmapFont{
		FamilyName: []byte(family),
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    -200,
		CharacterMap: []font.CharacterMapEntry{
			{CodePoint: ' ', GlyphIndex: 4},
			{CodePoint: 'H', GlyphIndex: 1},
			{CodePoint: 'i', GlyphIndex: 2},
			{CodePoint: 'é', GlyphIndex: 3},
		},
		Glyphs: []font.BitmapGlyphs{
			variant(8, 7, 3, 2),
			variant(12, 10, 4, 3),
			variant(16, 13, 5, 4),
		},
	}
}
