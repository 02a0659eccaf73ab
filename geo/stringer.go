// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MINLEN is the minimum admissible length of a stringer or panel edge
const MINLEN = 1e-9

// StringerGeometry holds the geometry of a 3-grip stringer: the two end
// grips, the mid grip, and the rectangular cross section
type StringerGeometry struct {

	// essential
	Grips  [3]Point // grip positions; Grips[1] is the mid grip
	Width  float64  // cross section width
	Height float64  // cross section height

	// derived. see Recompute
	L     float64 // length between end grips
	Angle float64 // signed angle of the axis w.r.t. the horizontal
	Area  float64 // cross section area
}

// NewStringerGeometry returns the geometry of a stringer given its three
// grip positions and cross section. It fails with a degenerate-geometry
// error if the end grips coincide or if the mid grip is off the chord
// midpoint.
func NewStringerGeometry(p1, p2, p3 Point, width, height float64) (o *StringerGeometry, err error) {
	if width < MINLEN || height < MINLEN {
		return nil, chk.Err("degenerate geometry: stringer cross section %g ⋅ %g is invalid", width, height)
	}
	o = &StringerGeometry{Grips: [3]Point{p1, p2, p3}, Width: width, Height: height}
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// Recompute refreshes the derived quantities after the grips or the cross
// section have been mutated
func (o *StringerGeometry) Recompute() (err error) {
	o.L = o.Grips[0].Dist(o.Grips[2])
	if o.L < MINLEN {
		return chk.Err("degenerate geometry: stringer with coincident end grips at (%g,%g)", o.Grips[0].X, o.Grips[0].Y)
	}
	mid := o.Grips[0].Mid(o.Grips[2])
	if o.Grips[1].Dist(mid) > 1e-6*o.L {
		return chk.Err("degenerate geometry: stringer mid grip (%g,%g) is off the chord midpoint (%g,%g)", o.Grips[1].X, o.Grips[1].Y, mid.X, mid.Y)
	}
	o.Angle = o.Grips[0].AngleTo(o.Grips[2])
	o.Area = o.Width * o.Height
	return
}

// DirCos returns the direction cosines of the stringer axis
func (o *StringerGeometry) DirCos() (c, s float64) {
	return math.Cos(o.Angle), math.Sin(o.Angle)
}
