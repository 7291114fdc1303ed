package monospace

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// uax11.Width consults the emoji and grapheme class tables, which have to
// be set up before the first call.
var setupClasses sync.Once

type msshape struct {
	em      dimen.PX
	context *uax11.Context
}

// Shaper creates a shaper for monospace typesetting.
// An em-dimension may be given which will then be used as the width of a
// cell. If is is zero, it will be set to 10px. If context is nil, a context
// for Latin script is used.
func Shaper(em dimen.PX, context *uax11.Context) glyphing.TextShaper {
	if em == 0 {
		em = 10
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	return msshape{em: em, context: context}
}

// ShapeText appends one glyph per character of text. Glyphs carry no glyph
// index, as there is no font involved.
func (ms msshape) ShapeText(text string, glyphs []glyphing.ShapedGlyph) []glyphing.ShapedGlyph {
	var buf [utf8.UTFMax]byte
	for i, r := range text {
		n := utf8.EncodeRune(buf[:], r)
		w := dimen.PX(uax11.Width(buf[:n], ms.context)) * ms.em
		glyphs = append(glyphs, glyphing.ShapedGlyph{
			ClusterID: i,
			XAdvance:  w,
			Width:     w,
			Height:    ms.em,
			CodePoint: r,
		})
	}
	return glyphs
}
