package fontregistry

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFont(family string) *font.BitmapFont {
	return &font.BitmapFont{
		FamilyName:   []byte(family),
		UnitsPerEm:   16,
		Ascent:       12,
		Descent:      -4,
		CharacterMap: []font.CharacterMapEntry{{CodePoint: 'x', GlyphIndex: 1}},
		Glyphs: []font.BitmapGlyphs{
			{PixelSize: 16, GlyphData: make([]font.BitmapGlyph, 2)},
		},
	}
}

func TestEmptyRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	assert.Equal(t, 0, reg.Len())
	f, err := reg.First()
	assert.Nil(t, f)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, ok := reg.Lookup("anything")
	assert.False(t, ok)
}

func TestRegistrationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	a, b, a2 := testFont("A"), testFont("B"), testFont("A")
	reg.Register(a)
	reg.Register(b)
	reg.Register(a2) // no de-duplication
	reg.Register(nil)
	assert.Equal(t, 3, reg.Len())
	first, err := reg.First()
	require.NoError(t, err)
	assert.Same(t, a, first)
	//
	f, ok := reg.Lookup("B")
	assert.True(t, ok)
	assert.Same(t, b, f)
	f, ok = reg.Lookup("A")
	assert.True(t, ok)
	assert.Same(t, a, f, "lookup should find the first registration")
	_, ok = reg.Lookup("a")
	assert.False(t, ok, "family names are compared exactly")
	//
	fonts := reg.Fonts()
	assert.Equal(t, []*font.BitmapFont{a, b, a2}, fonts)
	fonts[0] = nil
	first, _ = reg.First()
	assert.Same(t, a, first, "Fonts() should return a copy")
	reg.LogFontList()
}

func TestRegisterMalformedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	broken := testFont("Broken")
	broken.UnitsPerEm = 0
	reg.Register(broken)
	assert.Equal(t, 1, reg.Len(), "malformed fonts are still registered")
}

func TestGlobalRegistry(t *testing.T) {
	assert.Same(t, GlobalRegistry(), GlobalRegistry())
}
