package pixelfont

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face returns pf as a font.Face of package golang.org/x/image/font, e.g.
// for drawing text with a font.Drawer. Glyph masks share memory with the
// font data. Positions are snapped to whole device pixels.
func (pf PixelFont) Face() xfont.Face {
	return face{pf}
}

type face struct {
	pf PixelFont
}

var _ xfont.Face = face{}

func (f face) Close() error { return nil }

func (f face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	g, _, ok := f.pf.Lookup(r)
	if !ok {
		return
	}
	x := dot.X.Round() + int(g.X())
	bottom := dot.Y.Round() - int(g.Y())
	dr = image.Rect(x, bottom-int(g.Height()), x+int(g.Width()), bottom)
	return dr, g.Mask(), image.Point{}, fixed.I(int(g.XAdvance())), true
}

func (f face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, _, ok := f.pf.Lookup(r)
	if !ok {
		return
	}
	x, y := int(g.X()), int(g.Y())
	bounds = fixed.R(x, -(y + int(g.Height())), x+int(g.Width()), -y)
	return bounds, fixed.I(int(g.XAdvance())), true
}

func (f face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, _, ok := f.pf.Lookup(r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(g.XAdvance())), true
}

// Kern returns 0, bitmap fonts carry no kerning information.
func (f face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (f face) Metrics() xfont.Metrics {
	height, ascent := int(f.pf.Height()), int(f.pf.Ascent())
	return xfont.Metrics{
		Height:  fixed.I(height),
		Ascent:  fixed.I(ascent),
		Descent: fixed.I(height - ascent),
	}
}
