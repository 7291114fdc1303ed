package gfx

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/builtin"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"github.com/npillmayer/tinytype/engine/glyphing/pixelfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockFont() *font.BitmapFont {
	return &font.BitmapFont{
		FamilyName:   []byte("Block"),
		UnitsPerEm:   4,
		Ascent:       3,
		Descent:      -1,
		CharacterMap: []font.CharacterMapEntry{{CodePoint: 'x', GlyphIndex: 1}},
		Glyphs: []font.BitmapGlyphs{{
			PixelSize: 4,
			GlyphData: []font.BitmapGlyph{
				{},
				{X: 1, Y: 0, Width: 2, Height: 2, XAdvance: 4, Data: []byte{255, 255, 255, 255}},
			},
		}},
	}
}

func TestDrawText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.gfx")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	reg.Register(blockFont())
	pf := pixelfont.Match(reg, font.Request{}, 1)
	pic := NewPicture("block", 10, 4)
	pen := pic.DrawText(pf, 0, 3, "x?x")
	assert.EqualValues(t, 12, pen, "miss advances by pixel size")
	img := pic.Image()
	assert.EqualValues(t, 0, img.AlphaAt(0, 1).A)
	assert.EqualValues(t, 255, img.AlphaAt(1, 1).A)
	assert.EqualValues(t, 255, img.AlphaAt(2, 2).A)
	assert.EqualValues(t, 0, img.AlphaAt(1, 3).A, "baseline row stays empty")
	assert.EqualValues(t, 255, img.AlphaAt(9, 1).A, "third glyph at x=8, clipped")
	//
	var out strings.Builder
	require.NoError(t, pic.ShipoutASCII(&out))
	assert.Equal(t, "          \n @@      @\n @@      @\n          \n", out.String())
}

func TestShipoutPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.gfx")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	builtin.RegisterAll(reg)
	pf := pixelfont.Match(reg, font.RequestFamily(builtin.Fixed, 13), 1)
	pic := NewPicture("hello", 50, 2*pf.Height())
	pic.DrawLines(pf, 0, []string{"Hello", "World"})
	var buf bytes.Buffer
	require.NoError(t, pic.ShipoutPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 26, img.Bounds().Dy())
	inked := 0
	for _, a := range pic.Image().Pix {
		if a > 0 {
			inked++
		}
	}
	assert.Greater(t, inked, 0, "text should leave ink")
}
