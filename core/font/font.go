/*
Package font is for bitmap typeface handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "bitmap font" is a family of pre-rasterized glyphs, e.g. "Fixed",
together with the design metrics and the character map common to all
of its sizes.

* A "variant" is the family rasterized at one discrete pixel size, e.g.
"Fixed at 13px". Variants of a bitmap font share the character map,
therefore glyph indices are identical across variants.

* A "pixel font" (see package pixelfont) is a bitmap font resolved to one
variant for a given request and output device.

Bitmap fonts are created once, usually from data compiled into the
program, and are never modified or released afterwards. All lookups hand
out references into this data; nothing is copied.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
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
package font

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/option"
)

// tracer traces with key 'tinytype.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tinytype.fonts")
}

// DefaultFontSize is the size in logical pixels used for requests which
// do not specify one.
const DefaultFontSize dimen.Logical = 12

// CharacterMapEntry maps a code-point to the index of its glyph.
type CharacterMapEntry struct {
	CodePoint  rune
	GlyphIndex uint16
}

// BitmapGlyph holds the bitmap and placement of a single glyph at one pixel size.
//
// X is the left bearing, Y is the offset of the bitmap's bottom edge from
// the baseline (positive upwards). All values are device pixels.
// Data holds Width × Height bytes of 8-bit coverage, row-major, top row first.
type BitmapGlyph struct {
	X, Y          int16
	Width, Height int16
	XAdvance      int16
	Data          []byte
}

// BitmapGlyphs is a variant of a bitmap font, rasterized at PixelSize.
// GlyphData is indexed by glyph index.
type BitmapGlyphs struct {
	PixelSize int16
	GlyphData []BitmapGlyph
}

// BitmapFont is a family of pre-rasterized glyphs.
//
// CharacterMap must be sorted ascending by code-point and Glyphs must be
// sorted ascending by pixel size. Lookups rely on this without checking;
// use Validate to verify a font.
type BitmapFont struct {
	FamilyName   []byte
	UnitsPerEm   uint16
	Ascent       int16 // design units above the baseline
	Descent      int16 // design units below the baseline, negative
	CharacterMap []CharacterMapEntry
	Glyphs       []BitmapGlyphs
}

// Family returns the family name of f.
func (f *BitmapFont) Family() string {
	return string(f.FamilyName)
}

// PixelSizes returns the pixel sizes f has been rasterized at.
func (f *BitmapFont) PixelSizes() []int16 {
	sizes := make([]int16, len(f.Glyphs))
	for i, g := range f.Glyphs {
		sizes[i] = g.PixelSize
	}
	return sizes
}

// Request describes the font a client would like to use. Unset fields
// let the font matcher choose.
type Request struct {
	Family    option.Maybe[string]
	PixelSize option.Maybe[dimen.Logical]
}

// RequestFamily is a shortcut for a request with family name and size set.
func RequestFamily(family string, size dimen.Logical) Request {
	return Request{
		Family:    option.Some(family),
		PixelSize: option.Some(size),
	}
}
