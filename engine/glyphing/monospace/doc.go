/*
Package monospace implements a simple shaper for monospace output.

The shaper does not refer to any font data. Every character occupies one
or two cells of a fixed width, depending on its East Asian width property
(UAX #11). This is useful for measuring text destined for character
displays and as a reference for layout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace
