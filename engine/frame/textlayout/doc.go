/*
Package textlayout breaks text into lines and measures them.

Layout is independent of any concrete font technology: glyph advances are
taken from a glyphing.TextShaper. Lines are broken at mandatory breaks
(newline) and, if a maximum width is given, at line-wrap opportunities
as defined by UAX #14. Words too long for a line are broken between
characters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textlayout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tinytype.layout'.
func tracer() tracing.Trace {
	return tracing.Select("tinytype.layout")
}
