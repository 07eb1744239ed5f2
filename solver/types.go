// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the assembly step and numerical driver of
// the 2D geometric constraint solver: it maps registered points to
// coordinate row indices, concatenates point-fidelity residuals with
// constraint residuals and Lagrange-multiplier residuals into one
// vector function F(x) = 0, and drives a nonlinear root finder to solve
// it, writing the result back into the caller's points on success.
package solver

import (
	"github.com/cpmech/geosolve/constraint"
	"github.com/cpmech/geosolve/geom"
)

// DefaultRounded is the decimal precision Recount rounds accepted
// coordinates to when the caller doesn't specify one explicitly.
const DefaultRounded = 2

// Solver owns an ordered list of points and an ordered list of
// constraints between them. Both lists grow monotonically during normal
// use; points must not be removed while constraints referring to them
// are still registered. A Solver is stateless between calls to Recount:
// each call re-reads the current point positions.
//
// A Solver is not safe for concurrent use: Recount both reads and
// writes the registered points, and callers needing concurrency must
// either serialize on one Solver or use independent Solvers with
// disjoint point sets.
type Solver struct {
	points      []*geom.Point
	constraints []constraint.Constraint
	rowOf       map[*geom.Point]int

	// Rounded is the decimal precision Recount uses when no explicit
	// precision is passed to it. Defaults to DefaultRounded.
	Rounded int

	// Verbose, when true, makes Recount print a one-line diagnostic via
	// gosl/io when the root finder fails to converge. Off by default;
	// the core never logs unconditionally.
	Verbose bool
}

// NewSolver returns an empty Solver with the default rounding policy.
func NewSolver() *Solver {
	return &Solver{
		rowOf:   make(map[*geom.Point]int),
		Rounded: DefaultRounded,
	}
}

// AddPoint appends point to the solver's point list and assigns it a
// stable coordinate row index. There is no deduplication: adding the
// same point twice makes it occupy two rows and is almost certainly a
// caller mistake, but it is not rejected (the original tool doesn't
// reject it either).
func (s *Solver) AddPoint(point *geom.Point) {
	row := len(s.points) * 2
	s.points = append(s.points, point)
	s.rowOf[point] = row
}

// AddConstraint resolves c's point references against the rows assigned
// by AddPoint and appends it to the solver's constraint list. It returns
// InvalidArgument if c references a point that was never registered.
func (s *Solver) AddConstraint(c constraint.Constraint) error {
	if err := c.Bind(s.rowOf); err != nil {
		return err
	}
	s.constraints = append(s.constraints, c)
	return nil
}

// Points returns the solver's registered points, in registration order.
func (s *Solver) Points() []*geom.Point {
	return s.points
}

// Constraints returns the solver's registered constraints, in
// registration order.
func (s *Solver) Constraints() []constraint.Constraint {
	return s.constraints
}

// Size returns 2*len(points) + len(constraints): the dimension of the
// assembled unknown vector and residual function F.
func (s *Solver) Size() int {
	return len(s.points)*2 + len(s.constraints)
}
