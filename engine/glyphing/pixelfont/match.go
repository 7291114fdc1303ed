package pixelfont

import (
	"sort"

	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
)

// MatchFont resolves a font request against the global font registry.
// See Match.
func MatchFont(request font.Request, scale dimen.ScaleFactor) PixelFont {
	return Match(fontregistry.GlobalRegistry(), request, scale)
}

// Match resolves a font request to a registered bitmap font at one of its
// pixel sizes.
//
// If the request names a family registered with reg, the first font of
// that family is chosen. Otherwise the font registered first is used.
// The requested size (or DefaultFontSize) is converted to device pixels
// and rounded; the largest variant not exceeding it is selected. If all
// variants are larger, the smallest one is selected.
//
// Match panics if no fonts are registered, as no text could ever be
// rendered. This is a configuration error of the application.
func Match(reg *fontregistry.Registry, request font.Request, scale dimen.ScaleFactor) PixelFont {
	f, err := reg.First()
	if err != nil {
		panic(err)
	}
	if family, ok := request.Family.Get(); ok {
		if requested, found := reg.Lookup(family); found {
			f = requested
		}
	}
	if len(f.Glyphs) == 0 {
		panic(core.Error(core.EMISSING, "bitmap font %q has no pixel sizes", f.Family()))
	}
	requested := request.PixelSize.OrElse(font.DefaultFontSize).Physical(scale)
	nearest := sort.Search(len(f.Glyphs), func(i int) bool {
		return dimen.PX(f.Glyphs[i].PixelSize) > requested
	})
	if nearest > 0 {
		nearest--
	}
	return PixelFont{
		bitmapFont: f,
		glyphs:     &f.Glyphs[nearest],
	}
}
