// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DefaultRounded is the default number of decimal digits the geometry
// primitives round their results to, matching the source CAD tool's
// ROUNDED constant.
const DefaultRounded = 2

func roundedArg(rounded []int) int {
	if len(rounded) > 0 {
		return rounded[0]
	}
	return DefaultRounded
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func checkFinite(label string, vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			chk.Panic("geom: %s: coordinate is not finite: %v", label, v)
		}
	}
}

// P2P returns the Euclidean distance between two points, rounded to
// rounded decimal digits (default 2). It is symmetric and non-negative.
func P2P(p1, p2 *Point, rounded ...int) float64 {
	checkFinite("P2P", p1.X, p1.Y, p2.X, p2.Y)
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return roundTo(math.Sqrt(dx*dx+dy*dy), roundedArg(rounded))
}

// P2L returns the perpendicular distance from point to the infinite
// line through segment. A zero-length segment has no direction, so the
// formula degenerates to the distance to the segment's first endpoint.
func P2L(point *Point, s *Segment, rounded ...int) float64 {
	checkFinite("P2L", point.X, point.Y, s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
	length := s.Length()
	if length <= 0 {
		return P2P(point, s.P1, rounded...)
	}
	x0, y0 := point.X, point.Y
	x1, y1 := s.P1.X, s.P1.Y
	x2, y2 := s.P2.X, s.P2.Y
	signed := (y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1
	return roundTo(math.Abs(signed)/length, roundedArg(rounded))
}

// P2S returns the distance from point to the finite segment s: the
// perpendicular distance to the supporting line if the point's
// projection falls within the segment's span, otherwise the distance
// to the nearer endpoint.
func P2S(point *Point, s *Segment, rounded ...int) float64 {
	digits := roundedArg(rounded)
	checkFinite("P2S", point.X, point.Y, s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
	dx, dy := s.Dx(), s.Dy()
	l2 := dx*dx + dy*dy
	if l2 <= 0 {
		return P2P(point, s.P1, digits)
	}

	// parameter of the projection's foot along p1 -> p2 (0 at p1, 1 at p2)
	t := ((point.X-s.P1.X)*dx + (point.Y-s.P1.Y)*dy) / l2
	if t < 0 {
		return P2P(point, s.P1, digits)
	}
	if t > 1 {
		return P2P(point, s.P2, digits)
	}
	return P2L(point, s, digits)
}
