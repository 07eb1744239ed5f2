// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements the constraint catalogue: one residual
// equation per supported geometric relation, each carrying the gradient
// contributions it adds to the Lagrangian assembled by package solver.
//
// The source tool dispatches on constraint type at runtime through a
// class hierarchy; here each relation is instead one struct implementing
// the Constraint interface, a tagged variant whose cases are fixed at
// compile time (see Kind). This removes the dispatch and makes a
// constraint type that lacks one of the interface's methods a compile
// error, not a silent no-op. A Kind value without a case in Kind.String
// is reported as "Unknown".
package constraint

import "github.com/cpmech/geosolve/geom"

// Kind tags a Constraint with which relation it implements.
type Kind int

const (
	KindFixX Kind = iota
	KindFixY
	KindCoincidentX
	KindCoincidentY
	KindVertical
	KindHorizontal
	KindLength
	KindParallel
	KindAngle
	KindPerpendicular
)

func (k Kind) String() string {
	switch k {
	case KindFixX:
		return "FixX"
	case KindFixY:
		return "FixY"
	case KindCoincidentX:
		return "CoincidentX"
	case KindCoincidentY:
		return "CoincidentY"
	case KindVertical:
		return "Vertical"
	case KindHorizontal:
		return "Horizontal"
	case KindLength:
		return "Length"
	case KindParallel:
		return "Parallel"
	case KindAngle:
		return "Angle"
	case KindPerpendicular:
		return "Perpendicular"
	}
	return "Unknown"
}

// Constraint is one residual equation g(x) = 0 in the unknown point
// coordinates, plus its gradient contributions. A solver.Solver owns the
// Lagrange multiplier associated with each registered Constraint; the
// Constraint itself never sees lambda except as an argument to
// AddGradient.
type Constraint interface {
	// Kind reports which relation this constraint implements.
	Kind() Kind

	// Points returns the points this constraint references, in the order
	// its payload was constructed with (a point passed twice appears
	// twice). Bind resolves these same points to row indices.
	Points() []*geom.Point

	// Residual evaluates g(x) given the full assembled unknown vector x
	// (point coordinate rows followed by multiplier rows).
	Residual(x []float64) float64

	// AddGradient adds lambda * dg/dx_i into grad for every coordinate
	// row i this constraint depends on. grad is the gradient-residual
	// rows of the assembled vector (the first 2*len(points) rows of F);
	// x is the same full unknown vector passed to Residual.
	AddGradient(x, grad []float64, lambda float64)

	// Bind resolves this constraint's point references into coordinate
	// row indices, given the row index solver.Solver assigned to each
	// point at AddPoint time. It is called exactly once, by
	// solver.Solver.AddConstraint; callers outside package solver should
	// not call it directly.
	Bind(rowOf map[*geom.Point]int) error
}
