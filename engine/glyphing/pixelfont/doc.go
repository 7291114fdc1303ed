/*
Package pixelfont resolves font requests to bitmap fonts at a concrete pixel
size and shapes text with them.

A PixelFont is the pairing of a registered bitmap font and one of its
variants. It is created per request by Match and refers to the font data
without copying it. Matching, glyph lookup, shaping and metrics do not
allocate, which makes them usable on devices without a heap budget for
text rendering.

Two shaping contracts are offered: GlyphsForText iterates over the glyphs
which actually draw something, together with their pen positions, for
rasterizers; ShapeText produces one record per input character, tagged
with its byte position, for layout and cursor placement.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixelfont
