// Package dimen implements dimensions and units.
//
// Two coordinate spaces are in use: logical pixels, as requested by
// application code and layout, and device pixels, in which bitmap fonts
// have been rasterized. A ScaleFactor converts between them.
//
/*
BSD License

Copyright (c) 2017–22, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// PX is a length in device pixels.
type PX int32

// Logical is a length in logical pixels, i.e. before applying the
// scale factor of the output device.
type Logical float32

// ScaleFactor is the number of device pixels per logical pixel.
type ScaleFactor float32

// Zero is the zero length in device pixels.
const Zero PX = 0

// Infinity is the largest possible device length
const Infinity PX = math.MaxInt32

// Stringer implementation.
func (p PX) String() string {
	return fmt.Sprintf("%dpx", int32(p))
}

// Stringer implementation.
func (l Logical) String() string {
	return strconv.FormatFloat(float64(l), 'g', -1, 32) + "lpx"
}

// Physical converts a logical length to device pixels, rounding half away
// from zero.
func (l Logical) Physical(s ScaleFactor) PX {
	return clampPX(math.Round(float64(l) * float64(s)))
}

// PhysicalFloor converts a logical length to device pixels, truncating
// toward zero. Use it for limits which must not be exceeded.
func (l Logical) PhysicalFloor(s ScaleFactor) PX {
	return clampPX(math.Trunc(float64(l) * float64(s)))
}

// clampPX converts an integral value to device pixels, saturating at the
// bounds of PX. NaN maps to zero.
func clampPX(v float64) PX {
	switch {
	case v != v:
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return PX(v)
}

// Logical converts a device length to logical pixels.
// A zero scale factor is treated as 1.
func (p PX) Logical(s ScaleFactor) Logical {
	if s == 0 {
		s = 1
	}
	return Logical(float32(p) / float32(s))
}

// PhysicalSize is a width and height in device pixels.
type PhysicalSize struct {
	W, H PX
}

// Size is a width and height in logical pixels.
type Size struct {
	W, H Logical
}

// Logical converts a device size to logical pixels.
func (ps PhysicalSize) Logical(s ScaleFactor) Size {
	return Size{W: ps.W.Logical(s), H: ps.H.Logical(s)}
}

func (ps PhysicalSize) String() string {
	return fmt.Sprintf("(%s × %s)", ps.W, ps.H)
}

func (sz Size) String() string {
	return fmt.Sprintf("(%s × %s)", sz.W, sz.H)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(px|lpx)?$`)

// ParseLogical parses a string to return a logical length. Accepted are
// plain numbers and numbers with unit `px` or `lpx`, which are synonyms
// for logical pixels.
func ParseLogical(s string) (Logical, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, errors.New("format error parsing dimension")
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return 0, errors.New("format error parsing dimension")
	}
	return Logical(n), nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b PX) PX {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b PX) PX {
	if a > b {
		return a
	}
	return b
}
