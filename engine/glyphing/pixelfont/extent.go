package pixelfont

import (
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"github.com/npillmayer/tinytype/core/option"
	"github.com/npillmayer/tinytype/engine/frame/textlayout"
)

// TextSize measures text set with a font from the global registry.
// See Measure.
func TextSize(request font.Request, text string, maxWidth option.Maybe[dimen.Logical],
	scale dimen.ScaleFactor) dimen.Size {
	//
	return Measure(fontregistry.GlobalRegistry(), request, text, maxWidth, scale)
}

// Measure returns the size of the box text occupies when set with the font
// matching request. If maxWidth is set, lines are wrapped to fit into it.
// Sizes are given in logical pixels.
func Measure(reg *fontregistry.Registry, request font.Request, text string,
	maxWidth option.Maybe[dimen.Logical], scale dimen.ScaleFactor) dimen.Size {
	//
	pf := Match(reg, request, scale)
	limit := option.Map(maxWidth, func(w dimen.Logical) dimen.PX {
		return w.PhysicalFloor(scale)
	})
	longest, lines := textlayout.TextSize(pf, text, limit)
	size := dimen.PhysicalSize{
		W: longest,
		H: pf.Height() * dimen.PX(lines),
	}
	return size.Logical(scale)
}
