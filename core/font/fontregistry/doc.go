/*
Package fontregistry manages the registry of bitmap fonts available for
rendering.

The registry is populated once during startup, usually from font data
compiled into the program, and is read-only afterwards. It keeps fonts
in the order of registration; the first font registered serves as the
fallback for all requests which cannot be matched otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'tinytype.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tinytype.fonts")
}
