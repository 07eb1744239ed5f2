// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/geosolve/geom"

// CoincidentX constrains two points to share an X coordinate: p1.X = p2.X.
type CoincidentX struct {
	resolver
}

// NewCoincidentX constructs a CoincidentX constraint.
func NewCoincidentX(p1, p2 *geom.Point) *CoincidentX {
	return &CoincidentX{resolver: newResolver(p1, p2)}
}

func (c *CoincidentX) Kind() Kind { return KindCoincidentX }

func (c *CoincidentX) Residual(x []float64) float64 {
	return x[c.rows[1]] - x[c.rows[0]]
}

func (c *CoincidentX) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]] -= lambda
	grad[c.rows[1]] += lambda
}

// CoincidentY constrains two points to share a Y coordinate: p1.Y = p2.Y.
type CoincidentY struct {
	resolver
}

// NewCoincidentY constructs a CoincidentY constraint.
func NewCoincidentY(p1, p2 *geom.Point) *CoincidentY {
	return &CoincidentY{resolver: newResolver(p1, p2)}
}

func (c *CoincidentY) Kind() Kind { return KindCoincidentY }

func (c *CoincidentY) Residual(x []float64) float64 {
	return x[c.rows[1]+1] - x[c.rows[0]+1]
}

func (c *CoincidentY) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]+1] -= lambda
	grad[c.rows[1]+1] += lambda
}
