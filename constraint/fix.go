// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/geosolve/geom"
)

// FixX pins a point's X coordinate to a fixed value: point.X = value.
type FixX struct {
	resolver
	value float64
}

// NewFixX constructs a FixX constraint. value must be finite.
func NewFixX(point *geom.Point, value float64) (*FixX, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, invalidArgf("FixX: value must be finite, got %v", value)
	}
	return &FixX{resolver: newResolver(point), value: value}, nil
}

func (c *FixX) Kind() Kind { return KindFixX }

func (c *FixX) Residual(x []float64) float64 {
	return x[c.rows[0]] - c.value
}

func (c *FixX) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]] += lambda
}

// FixY pins a point's Y coordinate to a fixed value: point.Y = value.
type FixY struct {
	resolver
	value float64
}

// NewFixY constructs a FixY constraint. value must be finite.
func NewFixY(point *geom.Point, value float64) (*FixY, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, invalidArgf("FixY: value must be finite, got %v", value)
	}
	return &FixY{resolver: newResolver(point), value: value}, nil
}

func (c *FixY) Kind() Kind { return KindFixY }

func (c *FixY) Residual(x []float64) float64 {
	return x[c.rows[0]+1] - c.value
}

func (c *FixY) AddGradient(x, grad []float64, lambda float64) {
	grad[c.rows[0]+1] += lambda
}
