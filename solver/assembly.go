// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// x0 packs the solver's current state into the initial guess for the
// root finder: point rows seeded from current coordinates, multiplier
// rows seeded to zero (make already zero-initializes them, so only the
// point rows are written explicitly).
func (s *Solver) x0() []float64 {
	x := make([]float64, s.Size())
	for k, p := range s.points {
		x[k*2+0] = p.X
		x[k*2+1] = p.Y
	}
	return x
}

// system is the assembled residual function F(x) described in §4.3: for
// every point it contributes the gradient of the point-fidelity term
// 2*(x - p_current), and for every constraint it adds that constraint's
// Lagrangian gradient contribution into the coordinate rows it touches
// and sets its own row to its residual g_k(x).
func (s *Solver) system(x []float64) []float64 {
	y := make([]float64, len(x))

	for k, p := range s.points {
		y[k*2+0] = 2 * (x[k*2+0] - p.X)
		y[k*2+1] = 2 * (x[k*2+1] - p.Y)
	}

	n := len(s.points) * 2
	for m, c := range s.constraints {
		lambda := x[n+m]
		c.AddGradient(x, y, lambda)
		y[n+m] = c.Residual(x)
	}

	return y
}
