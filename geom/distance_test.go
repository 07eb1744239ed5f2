// Copyright 2024 The Geosolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_p2p01(tst *testing.T) {

	chk.PrintTitle("p2p01")

	cases := []struct {
		p1, p2   *Point
		expected float64
	}{
		{NewPoint(0, 0), NewPoint(5, 0), 5},
		{NewPoint(0, 0), NewPoint(0, 5), 5},
		{NewPoint(0, 0), NewPoint(5, 5), math.Sqrt(50)},
		{NewPoint(5, 5), NewPoint(0, 0), math.Sqrt(50)},
	}
	for i, c := range cases {
		actual := P2P(c.p1, c.p2)
		chk.Scalar(tst, "p2p", 1e-8, actual, roundTo(c.expected, DefaultRounded))
		_ = i
	}
}

func Test_p2p02_symmetric(tst *testing.T) {
	chk.PrintTitle("p2p02")
	p1, p2 := NewPoint(3, 4), NewPoint(9, -1)
	a := P2P(p1, p2)
	b := P2P(p2, p1)
	chk.Scalar(tst, "symmetric", 1e-12, a, b)
	if a < 0 {
		tst.Errorf("p2p must be non-negative, got %v", a)
	}
}

func Test_p2l01(tst *testing.T) {
	chk.PrintTitle("p2l01")

	cases := []struct {
		point    *Point
		seg      *Segment
		expected float64
	}{
		{NewPoint(0, 0), NewSegment(NewPoint(1, 1), NewPoint(1, 1)), math.Sqrt(2)},
		{NewPoint(2, 2), NewSegment(NewPoint(1, 1), NewPoint(1, 1)), math.Sqrt(2)},
		{NewPoint(0, 0), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), 0},
		{NewPoint(1, 1), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), 0},
		{NewPoint(2, 2), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), 0},
		{NewPoint(3, 3), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), 0},
		{NewPoint(1, 0), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), math.Sqrt(2) / 2},
		{NewPoint(2, 3), NewSegment(NewPoint(1, 1), NewPoint(2, 2)), math.Sqrt(2) / 2},
		{NewPoint(1, 0), NewSegment(NewPoint(1, 1), NewPoint(1, 2)), 0},
		{NewPoint(0, 0), NewSegment(NewPoint(1, 1), NewPoint(1, 2)), 1},
		{NewPoint(0, 1), NewSegment(NewPoint(1, 1), NewPoint(2, 1)), 0},
		{NewPoint(0, 0), NewSegment(NewPoint(1, 1), NewPoint(2, 1)), 1},
	}
	for _, c := range cases {
		actual := P2L(c.point, c.seg)
		chk.Scalar(tst, "p2l", 1e-8, actual, roundTo(c.expected, DefaultRounded))
	}
}

func Test_p2s01(tst *testing.T) {
	chk.PrintTitle("p2s01")

	cases := []struct {
		point    *Point
		seg      *Segment
		expected float64
	}{
		{NewPoint(1, 1), NewSegment(NewPoint(1, 1), NewPoint(3, 3)), 0},
		{NewPoint(2, 2), NewSegment(NewPoint(1, 1), NewPoint(3, 3)), 0},
		{NewPoint(3, 3), NewSegment(NewPoint(1, 1), NewPoint(3, 3)), 0},
		{NewPoint(0, 0), NewSegment(NewPoint(1, 1), NewPoint(3, 3)), math.Sqrt(2)},
		{NewPoint(4, 4), NewSegment(NewPoint(1, 1), NewPoint(3, 3)), math.Sqrt(2)},
		{NewPoint(3, 4), NewSegment(NewPoint(0, 0), NewPoint(4, 0)), 4},
		{NewPoint(1, 1), NewSegment(NewPoint(3, 3), NewPoint(1, 1)), 0},
		{NewPoint(2, 2), NewSegment(NewPoint(3, 3), NewPoint(1, 1)), 0},
		{NewPoint(3, 3), NewSegment(NewPoint(3, 3), NewPoint(1, 1)), 0},
		{NewPoint(0, 0), NewSegment(NewPoint(3, 3), NewPoint(1, 1)), math.Sqrt(2)},
		{NewPoint(4, 4), NewSegment(NewPoint(3, 3), NewPoint(1, 1)), math.Sqrt(2)},
		{NewPoint(4, 3), NewSegment(NewPoint(0, 4), NewPoint(0, 0)), 4},
		{NewPoint(3, 4), NewSegment(NewPoint(4, 0), NewPoint(0, 0)), 4},
		{NewPoint(0, 0), NewSegment(NewPoint(0, 3), NewPoint(3, 0)), math.Sqrt(18) / 2},
		{NewPoint(0, 0), NewSegment(NewPoint(3, 0), NewPoint(0, 3)), math.Sqrt(18) / 2},
	}
	for _, c := range cases {
		actual := P2S(c.point, c.seg)
		chk.Scalar(tst, "p2s", 1e-8, actual, roundTo(c.expected, DefaultRounded))
	}
}

func Test_p2s02_geq_p2l(tst *testing.T) {
	chk.PrintTitle("p2s02")
	s := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	pts := []*Point{NewPoint(-5, 3), NewPoint(5, 3), NewPoint(15, -2), NewPoint(5, 0)}
	for _, p := range pts {
		ps := P2S(p, s)
		pl := P2L(p, s)
		if ps < pl {
			tst.Errorf("p2s (%v) must be >= p2l (%v) for point %v", ps, pl, p)
		}
	}
}
