package font

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/npillmayer/tinytype/core"
	"golang.org/x/image/font/basicfont"
)

// FromBasicFace creates a bitmap font from a fixed-size face of package
// golang.org/x/image/font/basicfont, e.g. basicfont.Face7x13.
//
// The face's size becomes the first variant. For every factor in scales,
// an additional variant is created by integer upscaling (see ScaleGlyphs);
// scales have to be ascending and greater than 1.
//
// Glyph index 0 is reserved for an empty .notdef glyph. Bitmaps of the
// base variant share memory with the face's mask whenever the mask's
// layout permits it.
func FromBasicFace(family string, face *basicfont.Face, scales ...int) (*BitmapFont, error) {
	if face == nil || face.Mask == nil || face.Height <= 0 {
		return nil, core.Error(core.EINVALID, "cannot create font %q from empty face", family)
	}
	if face.Height > math.MaxUint16 || face.Width > math.MaxInt16 {
		return nil, core.Error(core.EINVALID, "face for font %q too large", family)
	}
	prev := 1
	for _, s := range scales {
		if s <= prev || s*face.Height > math.MaxInt16 {
			return nil, core.Error(core.EINVALID, "font %q: invalid scale factor %d", family, s)
		}
		prev = s
	}
	f := &BitmapFont{
		FamilyName: []byte(family),
		UnitsPerEm: uint16(face.Height),
		Ascent:     int16(face.Ascent),
		Descent:    -int16(face.Descent),
	}
	masks := face.Mask.Bounds().Dy() / face.Height
	glyphs := make([]BitmapGlyph, masks+1) // glyph 0 is .notdef
	glyphs[0] = BitmapGlyph{XAdvance: int16(face.Advance)}
	for i := 0; i < masks; i++ {
		glyphs[i+1] = BitmapGlyph{
			X:        int16(face.Left),
			Y:        int16(face.Ascent - face.Height),
			Width:    int16(face.Width),
			Height:   int16(face.Height),
			XAdvance: int16(face.Advance),
			Data:     maskPixels(face.Mask, face.Width, face.Height, i),
		}
	}
	for _, rng := range face.Ranges {
		for r := rng.Low; r < rng.High; r++ {
			index := rng.Offset + int(r-rng.Low)
			if index >= masks || index+1 > math.MaxUint16 {
				continue
			}
			f.CharacterMap = append(f.CharacterMap, CharacterMapEntry{
				CodePoint:  r,
				GlyphIndex: uint16(index + 1),
			})
		}
	}
	sort.Slice(f.CharacterMap, func(i, j int) bool {
		return f.CharacterMap[i].CodePoint < f.CharacterMap[j].CodePoint
	})
	base := BitmapGlyphs{PixelSize: int16(face.Height), GlyphData: glyphs}
	f.Glyphs = append(f.Glyphs, base)
	for _, s := range scales {
		f.Glyphs = append(f.Glyphs, ScaleGlyphs(base, s))
	}
	tracer().Infof("created bitmap font %q with %d code-points at sizes %v",
		family, len(f.CharacterMap), f.PixelSizes())
	return f, nil
}

// maskPixels returns the coverage of the n-th glyph cell of a basicfont mask.
func maskPixels(mask image.Image, w, h, n int) []byte {
	cell := image.Rect(0, n*h, w, (n+1)*h).Add(mask.Bounds().Min)
	if alpha, ok := mask.(*image.Alpha); ok && alpha.Stride == w {
		start := alpha.PixOffset(cell.Min.X, cell.Min.Y)
		end := start + w*h
		if start >= 0 && end <= len(alpha.Pix) {
			return alpha.Pix[start:end:end]
		}
	}
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.AlphaModel.Convert(mask.At(cell.Min.X+x, cell.Min.Y+y)).(color.Alpha)
			pix[y*w+x] = c.A
		}
	}
	return pix
}

// ScaleGlyphs creates a new variant by enlarging every glyph of v by an
// integer factor, using nearest-neighbour sampling. Glyph indices are
// preserved.
func ScaleGlyphs(v BitmapGlyphs, factor int) BitmapGlyphs {
	if factor <= 1 {
		return v
	}
	s := int16(factor)
	scaled := BitmapGlyphs{
		PixelSize: v.PixelSize * s,
		GlyphData: make([]BitmapGlyph, len(v.GlyphData)),
	}
	for i, g := range v.GlyphData {
		w, h := int(g.Width), int(g.Height)
		sg := BitmapGlyph{
			X:        g.X * s,
			Y:        g.Y * s,
			Width:    g.Width * s,
			Height:   g.Height * s,
			XAdvance: g.XAdvance * s,
		}
		if w > 0 && h > 0 && len(g.Data) >= w*h {
			sw := w * factor
			sg.Data = make([]byte, sw*h*factor)
			for y := 0; y < h*factor; y++ {
				row := g.Data[(y/factor)*w : (y/factor+1)*w]
				for x := 0; x < sw; x++ {
					sg.Data[y*sw+x] = row[x/factor]
				}
			}
		}
		scaled.GlyphData[i] = sg
	}
	return scaled
}
