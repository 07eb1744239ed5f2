// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/cpmech/geosolve/geom"
)

// Angle constrains the angle between the direction of segment p1-p2 and
// the direction of segment p3-p4 to equal thetaDegrees, encoded as
// cosine similarity (rather than atan2) so the residual is smooth
// everywhere; Perpendicular is Angle specialized to theta = 90, sharing
// this same residual and gradient.
type Angle struct {
	resolver
	cosTheta float64
	Degrees  float64
}

// NewAngle constructs an Angle constraint. thetaDegrees must be finite;
// it is converted to radians and its cosine is stored as the canonical
// comparison value.
func NewAngle(p1, p2, p3, p4 *geom.Point, thetaDegrees float64) (*Angle, error) {
	if math.IsNaN(thetaDegrees) || math.IsInf(thetaDegrees, 0) {
		return nil, invalidArgf("Angle: theta must be finite, got %v", thetaDegrees)
	}
	radians := math.Pi / 180 * thetaDegrees
	return &Angle{
		resolver: newResolver(p1, p2, p3, p4),
		cosTheta: math.Cos(radians),
		Degrees:  thetaDegrees,
	}, nil
}

// NewPerpendicular constructs an Angle constraint fixed at 90 degrees.
func NewPerpendicular(p1, p2, p3, p4 *geom.Point) *Angle {
	c, _ := NewAngle(p1, p2, p3, p4, 90)
	return c
}

func (c *Angle) Kind() Kind {
	if c.Degrees == 90 {
		return KindPerpendicular
	}
	return KindAngle
}

func (c *Angle) ab(x []float64) (ax, ay, bx, by float64) {
	i1, i2, i3, i4 := c.rows[0], c.rows[1], c.rows[2], c.rows[3]
	ax = x[i1] - x[i2]
	ay = x[i1+1] - x[i2+1]
	bx = x[i3] - x[i4]
	by = x[i3+1] - x[i4+1]
	return
}

func (c *Angle) Residual(x []float64) float64 {
	ax, ay, bx, by := c.ab(x)
	l1 := math.Sqrt(ax*ax + ay*ay)
	l2 := math.Sqrt(bx*bx + by*by)
	return (ax*bx+ay*by)/(l1*l2) - c.cosTheta
}

func (c *Angle) AddGradient(x, grad []float64, lambda float64) {
	ax, ay, bx, by := c.ab(x)
	i1, i2, i3, i4 := c.rows[0], c.rows[1], c.rows[2], c.rows[3]

	l1 := math.Sqrt(ax*ax + ay*ay)
	l2 := math.Sqrt(bx*bx + by*by)
	l1_3l2 := l1 * l1 * l1 * l2
	l1l2_3 := l1 * l2 * l2 * l2

	cross := bx*ay - ax*by

	grad[i1] += lambda * (ay * cross / l1_3l2)
	grad[i2] += lambda * (ay * -cross / l1_3l2)
	grad[i3] += lambda * (by * -cross / l1l2_3)
	grad[i4] += lambda * (by * cross / l1l2_3)

	grad[i1+1] += lambda * (ax * -cross / l1_3l2)
	grad[i2+1] += lambda * (ax * cross / l1_3l2)
	grad[i3+1] += lambda * (bx * cross / l1l2_3)
	grad[i4+1] += lambda * (bx * -cross / l1l2_3)
}
