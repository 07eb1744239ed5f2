// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/geosolve/geom"

// Length constrains the Euclidean distance between two points:
// ||p2 - p1|| = L.
type Length struct {
	resolver
	L float64
}

// NewLength constructs a Length constraint. L must be non-negative.
func NewLength(p1, p2 *geom.Point, L float64) (*Length, error) {
	if L < 0 {
		return nil, invalidArgf("Length: length must be non-negative, got %v", L)
	}
	return &Length{resolver: newResolver(p1, p2), L: L}, nil
}

func (c *Length) Kind() Kind { return KindLength }

func (c *Length) dxdy(x []float64) (dx, dy float64) {
	i1, i2 := c.rows[0], c.rows[1]
	return x[i2] - x[i1], x[i2+1] - x[i1+1]
}

func (c *Length) Residual(x []float64) float64 {
	dx, dy := c.dxdy(x)
	return dx*dx + dy*dy - c.L*c.L
}

func (c *Length) AddGradient(x, grad []float64, lambda float64) {
	dx, dy := c.dxdy(x)
	i1, i2 := c.rows[0], c.rows[1]
	grad[i1] -= 2 * lambda * dx
	grad[i2] += 2 * lambda * dx
	grad[i1+1] -= 2 * lambda * dy
	grad[i2+1] += 2 * lambda * dy
}
