// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/cpmech/geosolve/geom"
	"github.com/cpmech/gosl/chk"
)

// InvalidArgument is raised by constraint constructors given a
// semantically impossible payload (e.g. a negative Length, or a NaN/Inf
// coordinate or angle). It mirrors solver.InvalidArgument but lives here
// to keep constructors free of an import cycle with package solver.
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string { return e.Msg }

func invalidArgf(format string, args ...interface{}) error {
	return &InvalidArgument{Msg: chk.Err(format, args...).Error()}
}

// resolver is the shared bookkeeping every Constraint implementation
// needs: the points it was constructed with, and the coordinate row
// index each resolves to once Bind has run.
type resolver struct {
	pts   []*geom.Point
	rows  []int // one row index per point in pts, x-coordinate row
	bound bool
}

func newResolver(pts ...*geom.Point) resolver {
	return resolver{pts: pts, rows: make([]int, len(pts))}
}

func (r *resolver) Points() []*geom.Point { return r.pts }

func (r *resolver) Bind(rowOf map[*geom.Point]int) error {
	for i, p := range r.pts {
		row, ok := rowOf[p]
		if !ok {
			return invalidArgf("constraint references a point that was never registered with the solver")
		}
		r.rows[i] = row
	}
	r.bound = true
	return nil
}
