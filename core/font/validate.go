package font

import (
	"errors"

	"github.com/npillmayer/tinytype/core"
)

// Validate checks the structural invariants of a bitmap font which
// lookups depend upon. All violations found are reported, joined into
// one error with code core.EINVALID.
func (f *BitmapFont) Validate() error {
	if f == nil {
		return core.Error(core.EINVALID, "bitmap font is nil")
	}
	var errs []error
	fail := func(format string, v ...interface{}) {
		errs = append(errs, core.Error(core.EINVALID, format, v...))
	}
	name := f.Family()
	if f.UnitsPerEm == 0 {
		fail("font %q: units per em is 0", name)
	}
	if f.Descent > 0 {
		fail("font %q: descent %d is positive", name, f.Descent)
	}
	if len(f.Glyphs) == 0 {
		fail("font %q has no pixel size variants", name)
	}
	for i := 1; i < len(f.CharacterMap); i++ {
		if f.CharacterMap[i-1].CodePoint >= f.CharacterMap[i].CodePoint {
			fail("font %q: character map not strictly ascending at %U", name,
				f.CharacterMap[i].CodePoint)
			break
		}
	}
	for i, variant := range f.Glyphs {
		if i > 0 && f.Glyphs[i-1].PixelSize >= variant.PixelSize {
			fail("font %q: pixel sizes not strictly ascending at %dpx", name, variant.PixelSize)
		}
		for _, entry := range f.CharacterMap {
			if int(entry.GlyphIndex) >= len(variant.GlyphData) {
				fail("font %q@%dpx: glyph index %d of %U out of range", name,
					variant.PixelSize, entry.GlyphIndex, entry.CodePoint)
				break
			}
		}
		for gid, g := range variant.GlyphData {
			if g.Width < 0 || g.Height < 0 {
				fail("font %q@%dpx: glyph %d has negative extent", name, variant.PixelSize, gid)
			} else if len(g.Data) < int(g.Width)*int(g.Height) {
				fail("font %q@%dpx: glyph %d bitmap too short", name, variant.PixelSize, gid)
			}
		}
	}
	return errors.Join(errs...)
}
