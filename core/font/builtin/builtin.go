/*
Package builtin provides bitmap fonts which are always available, derived
from the fixed-size faces of golang.org/x/image.

Fonts are built on first use and shared afterwards. Applications register
them with RegisterAll, usually during startup:

    builtin.RegisterAll(fontregistry.GlobalRegistry())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builtin

import (
	"sync"

	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Family names of the built-in fonts.
const (
	Fixed           = "Fixed"
	Inconsolata     = "Inconsolata"
	InconsolataBold = "Inconsolata Bold"
)

var builtinFonts []*font.BitmapFont

var builtinFontsCreation sync.Once

// Fonts returns the built-in fonts, in order of preference: "Fixed" at 13px
// and 26px, "Inconsolata" at 16px and 32px, and "Inconsolata Bold" at 16px.
func Fonts() []*font.BitmapFont {
	builtinFontsCreation.Do(func() {
		builtinFonts = []*font.BitmapFont{
			fromFace(Fixed, basicfont.Face7x13, 2),
			fromFace(Inconsolata, inconsolata.Regular8x16, 2),
			fromFace(InconsolataBold, inconsolata.Bold8x16),
		}
	})
	return builtinFonts
}

// RegisterAll registers the built-in fonts with reg. "Fixed" will be the
// first font registered, thus serving as the fallback font if reg has
// been empty.
func RegisterAll(reg *fontregistry.Registry) {
	for _, f := range Fonts() {
		reg.Register(f)
	}
}

func fromFace(family string, face *basicfont.Face, scales ...int) *font.BitmapFont {
	f, err := font.FromBasicFace(family, face, scales...)
	if err != nil {
		panic("cannot create built-in font " + family) // this cannot happen
	}
	return f
}
