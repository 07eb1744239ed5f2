// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/geosolve/constraint"

// InvalidArgument is raised synchronously by constraint constructors (and
// by Solver.AddConstraint, when a constraint references a point that was
// never registered) given a semantically impossible payload. It is an
// alias of constraint.InvalidArgument so callers can check either
// package's constructors against a single type with errors.As.
type InvalidArgument = constraint.InvalidArgument

// SolutionNotFound is raised by Solver.Recount when the nonlinear root
// finder fails to converge. Info carries whatever diagnostic data the
// finder exposed; Message is a human-readable summary. Points are left
// untouched by a call that raises this error.
type SolutionNotFound struct {
	Info    map[string]interface{}
	Message string
}

func (e *SolutionNotFound) Error() string { return e.Message }
