// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/geosolve/geom"

// Parallel constrains the direction of segment p1-p2 to be parallel to
// the direction of segment p3-p4, encoded as the vanishing cross product
// of a = p1-p2 and b = p3-p4. This is smooth everywhere (unlike a
// tangent-based formulation, which has singularities at +-pi/2).
type Parallel struct {
	resolver
}

// NewParallel constructs a Parallel constraint between segments p1-p2
// and p3-p4.
func NewParallel(p1, p2, p3, p4 *geom.Point) *Parallel {
	return &Parallel{resolver: newResolver(p1, p2, p3, p4)}
}

func (c *Parallel) Kind() Kind { return KindParallel }

func (c *Parallel) ab(x []float64) (ax, ay, bx, by float64) {
	i1, i2, i3, i4 := c.rows[0], c.rows[1], c.rows[2], c.rows[3]
	ax = x[i1] - x[i2]
	ay = x[i1+1] - x[i2+1]
	bx = x[i3] - x[i4]
	by = x[i3+1] - x[i4+1]
	return
}

func (c *Parallel) Residual(x []float64) float64 {
	ax, ay, bx, by := c.ab(x)
	return ax*by - ay*bx
}

func (c *Parallel) AddGradient(x, grad []float64, lambda float64) {
	ax, ay, bx, by := c.ab(x)
	i1, i2, i3, i4 := c.rows[0], c.rows[1], c.rows[2], c.rows[3]

	grad[i1] += lambda * by
	grad[i2] -= lambda * by
	grad[i3] -= lambda * ay
	grad[i4] += lambda * ay

	grad[i1+1] -= lambda * bx
	grad[i2+1] += lambda * bx
	grad[i3+1] += lambda * ax
	grad[i4+1] -= lambda * ax
}
