/*
Package gfx draws text set with pixel fonts onto raster images.

A Picture owns an 8-bit coverage image. Glyph bitmaps are blended onto it
at the positions the glyph iterator of a pixel font reports, without any
further scaling or anti-aliasing. Pictures may be shipped out as PNG or,
for debugging, as ASCII art.

BSD License

Copyright (c) 2017-22, Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package gfx

import (
	"bufio"
	"image"
	"image/png"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/engine/glyphing/pixelfont"
	"golang.org/x/image/draw"
)

// tracer traces with key 'tinytype.gfx'
func tracer() tracing.Trace {
	return tracing.Select("tinytype.gfx")
}

// Picture is a named raster image to draw text onto.
type Picture struct {
	Name string
	img  *image.Alpha
}

// NewPicture creates an empty picture of w × h pixels.
func NewPicture(name string, w, h dimen.PX) *Picture {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Picture{
		Name: name,
		img:  image.NewAlpha(image.Rect(0, 0, int(w), int(h))),
	}
}

// Image returns the coverage image of the picture.
func (pic *Picture) Image() *image.Alpha {
	return pic.img
}

// DrawText draws text with font pf, starting at x on the given baseline.
// Glyphs are clipped at the picture's bounds; characters without a glyph
// leave a gap. DrawText returns the pen position after the text.
func (pic *Picture) DrawText(pf pixelfont.PixelFont, x, baseline dimen.PX, text string) dimen.PX {
	it := pf.GlyphsForText(text)
	for it.Next() {
		g := it.Glyph()
		if g.Width() == 0 || g.Height() == 0 {
			continue
		}
		left := x + it.X() + g.X()
		bottom := baseline - g.Y()
		r := image.Rect(int(left), int(bottom-g.Height()), int(left+g.Width()), int(bottom))
		draw.DrawMask(pic.img, r, image.Opaque, image.Point{}, g.Mask(), image.Point{}, draw.Over)
	}
	return x + it.Pen()
}

// DrawLines draws lines of text, one below the other, each line advancing
// by the font's line height. The first baseline is placed at the font's
// ascent.
func (pic *Picture) DrawLines(pf pixelfont.PixelFont, x dimen.PX, lines []string) {
	baseline := pf.Ascent()
	for _, line := range lines {
		pic.DrawText(pf, x, baseline, line)
		baseline += pf.Height()
	}
}

// ShipoutPNG writes the picture as a gray-scale PNG image.
func (pic *Picture) ShipoutPNG(w io.Writer) error {
	if err := png.Encode(w, pic.img); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot ship out picture %q", pic.Name)
	}
	tracer().Debugf("shipped out picture %q", pic.Name)
	return nil
}

// asciiShades maps coverage to characters, from transparent to opaque.
const asciiShades = " .:-=+*#%@"

// ShipoutASCII writes the picture as ASCII art, one character per pixel.
// It is intended for debugging.
func (pic *Picture) ShipoutASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	b := pic.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := int(pic.img.AlphaAt(x, y).A)
			bw.WriteByte(asciiShades[a*(len(asciiShades)-1)/255])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
