// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// AngleRaw returns the signed angle, in degrees and in the canonical
// range [0, 360), measured counter-clockwise from the direction of s1 to
// the direction of s2. It is returned at full precision; use Angle for
// the rounded convenience wrapper.
//
// AngleRaw(s, s) == 0 and AngleRaw(s, s.Reverse()) == 180 for any
// non-degenerate segment s.
func AngleRaw(s1, s2 *Segment) float64 {
	checkFinite("AngleRaw", s1.P1.X, s1.P1.Y, s1.P2.X, s1.P2.Y, s2.P1.X, s2.P1.Y, s2.P2.X, s2.P2.Y)
	a1 := math.Atan2(s1.Dy(), s1.Dx())
	a2 := math.Atan2(s2.Dy(), s2.Dx())
	deg := (a2 - a1) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Angle rounds AngleRaw to rounded decimal digits (default 2), per the
// Open Question in the design notes: raw and rounded angles are both
// exposed rather than only ever returning a quantized value.
func Angle(s1, s2 *Segment, rounded ...int) float64 {
	return roundTo(AngleRaw(s1, s2), roundedArg(rounded))
}
