// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/geosolve/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// maxFunctionEvaluations and xTolerance are the root finder's stop
// criteria, fixed per §4.4: 1000 function evaluations, 1e-4 on x.
const (
	maxFunctionEvaluations = 1000
	xTolerance             = 1e-4
)

// Recount solves the assembled residual system, writes the accepted
// coordinates (rounded to rounded decimal digits, default s.Rounded)
// back into the registered points, and returns them. On failure it
// returns SolutionNotFound and leaves every point exactly as it was
// before the call.
//
// A second Recount immediately following a successful one returns the
// same coordinates (within rounding), since the seed (the just-written,
// rounded point positions) is already a root of F up to that rounding.
func (s *Solver) Recount(rounded ...int) ([]*geom.Point, error) {
	digits := s.Rounded
	if len(rounded) > 0 {
		digits = rounded[0]
	}

	n := s.Size()
	x := s.x0()

	ffcn := func(fx, xi []float64) error {
		y := s.system(xi)
		copy(fx, y)
		return nil
	}

	var nls num.NlSolver
	nls.Init(n, ffcn, nil, nil, true, true, map[string]float64{"maxIt": float64(maxFunctionEvaluations)})
	nls.SetTols(xTolerance, xTolerance, 1e-9, num.EPS)
	defer nls.Clean()

	err := nls.Solve(x, !s.Verbose)
	if err != nil {
		if s.Verbose {
			io.Pfred("solver: recount: root finder failed: %v\n", err)
		}
		return nil, &SolutionNotFound{
			Info:    map[string]interface{}{"x": x, "err": err.Error()},
			Message: chk.Err("no solution satisfies the registered constraints: %v", err).Error(),
		}
	}

	for k, p := range s.points {
		p.X = roundTo(x[k*2+0], digits)
		p.Y = roundTo(x[k*2+1], digits)
	}
	return s.points, nil
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
