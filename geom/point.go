// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the pure 2D geometric primitives the constraint
// catalogue and sketch UI are defined in terms of: points, segments, and
// the distance/angle functions used to state and check constraints.
package geom

import "math"

// Point is a mutable 2D position. Two distinct *Point values at identical
// coordinates are distinct variables to a Solver; correlation is by
// pointer identity, never by value.
type Point struct {
	X, Y float64
}

// NewPoint allocates a point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Segment is an ordered pair of points. It is not itself a solver
// variable; it is only used by the geometry primitives below and by
// hit-testing in the (out of scope) sketch UI.
type Segment struct {
	P1, P2 *Point
}

// NewSegment builds a segment from two points.
func NewSegment(p1, p2 *Point) *Segment {
	return &Segment{P1: p1, P2: p2}
}

// Points returns the segment's two endpoints, in order.
func (s *Segment) Points() (*Point, *Point) {
	return s.P1, s.P2
}

// Dx and Dy are the segment's signed coordinate deltas, p2 - p1.
func (s *Segment) Dx() float64 { return s.P2.X - s.P1.X }
func (s *Segment) Dy() float64 { return s.P2.Y - s.P1.Y }

// Length is the Euclidean length of the segment; it is zero for a
// degenerate (zero-length) segment.
func (s *Segment) Length() float64 {
	return math.Hypot(s.Dx(), s.Dy())
}

// IsVertical reports whether the segment's endpoints share an X
// coordinate exactly (no tolerance; not used by the constraints).
func (s *Segment) IsVertical() bool {
	return s.P1.X == s.P2.X
}

// IsHorizontal reports whether the segment's endpoints share a Y
// coordinate exactly.
func (s *Segment) IsHorizontal() bool {
	return s.P1.Y == s.P2.Y
}

// Reverse returns a new segment with endpoints swapped.
func (s *Segment) Reverse() *Segment {
	return &Segment{P1: s.P2, P2: s.P1}
}
