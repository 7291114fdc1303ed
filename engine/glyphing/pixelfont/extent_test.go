package pixelfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/builtin"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"github.com/npillmayer/tinytype/core/option"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.glyphs")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	reg.Register(newTestFont("A"))
	noWrap := option.None[dimen.Logical]()
	//
	sz := Measure(reg, font.Request{}, "Hi", noWrap, 1)
	assert.Equal(t, dimen.Size{W: 14, H: 12}, sz)
	// 12lpx at scale 2 → 24px → 16px variant: H=13, i=5, height 16
	sz = Measure(reg, font.Request{}, "Hi", noWrap, 2)
	assert.Equal(t, dimen.Size{W: 9, H: 8}, sz)
	//
	sz = Measure(reg, font.Request{}, "Hi\nHiHi", noWrap, 1)
	assert.Equal(t, dimen.Size{W: 28, H: 24}, sz)
}

func TestMeasureWrapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.glyphs")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	reg.Register(newTestFont("A"))
	// "Hi " advances 17px, but trailing space does not count
	sz := Measure(reg, font.Request{}, "Hi Hi", option.Some[dimen.Logical](20), 1)
	assert.Equal(t, dimen.Size{W: 14, H: 24}, sz)
	sz = Measure(reg, font.Request{}, "Hi Hi", option.Some[dimen.Logical](40), 1)
	assert.Equal(t, dimen.Size{W: 31, H: 12}, sz)
}

func TestBuiltinFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.glyphs")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	builtin.RegisterAll(reg)
	pf := Match(reg, font.RequestFamily(builtin.Fixed, 12), 1)
	assert.EqualValues(t, 13, pf.PixelSize(), "12px is below all variants of Fixed")
	assert.EqualValues(t, 11, pf.Ascent())
	assert.EqualValues(t, 13, pf.Height())
	glyphs := pf.ShapeText("Hello", nil)
	for _, g := range glyphs {
		assert.True(t, g.HasGlyph(), "built-in font should cover %q", g.CodePoint)
		assert.EqualValues(t, 7, g.XAdvance)
	}
	pf = Match(reg, font.RequestFamily(builtin.Fixed, 13), 2)
	assert.EqualValues(t, 26, pf.PixelSize())
	assert.EqualValues(t, 22, pf.Ascent())
	it := pf.GlyphsForText("Hello")
	for it.Next() {
	}
	assert.EqualValues(t, 5*14, it.Pen())
	//
	pf = Match(reg, font.RequestFamily(builtin.Inconsolata, 20), 1)
	assert.Equal(t, builtin.Inconsolata, pf.Font().Family())
	assert.EqualValues(t, 16, pf.PixelSize())
	sz := Measure(reg, font.RequestFamily(builtin.Inconsolata, 16), "Hello World", option.Some[dimen.Logical](60), 1)
	// Inconsolata has ascent 14 and descent 3 at 16 units/em: 17px per line
	assert.EqualValues(t, 17, pf.Height())
	assert.Equal(t, dimen.Size{W: 40, H: 34}, sz)
}
