// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/geosolve/geom"

// Vertical constrains the segment p1-p2 to be vertical: p1.X = p2.X. It
// shares CoincidentX's residual and gradient but is kept as a distinct
// type for the caller's intent (a segment orientation, not a point
// coincidence).
type Vertical struct {
	resolver
}

// NewVertical constructs a Vertical constraint.
func NewVertical(p1, p2 *geom.Point) *Vertical {
	return &Vertical{resolver: newResolver(p1, p2)}
}

func (c *Vertical) Kind() Kind { return KindVertical }

func (c *Vertical) Residual(x []float64) float64 {
	return x[c.rows[1]] - x[c.rows[0]]
}

func (c *Vertical) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]] -= lambda
	grad[c.rows[1]] += lambda
}

// Horizontal constrains the segment p1-p2 to be horizontal: p1.Y = p2.Y.
type Horizontal struct {
	resolver
}

// NewHorizontal constructs a Horizontal constraint.
func NewHorizontal(p1, p2 *geom.Point) *Horizontal {
	return &Horizontal{resolver: newResolver(p1, p2)}
}

func (c *Horizontal) Kind() Kind { return KindHorizontal }

func (c *Horizontal) Residual(x []float64) float64 {
	return x[c.rows[1]+1] - x[c.rows[0]+1]
}

func (c *Horizontal) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]+1] -= lambda
	grad[c.rows[1]+1] += lambda
}
