// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements the geometric value types used by stringer-panel
// models: points, edges, stringer geometries and quadrilateral panel
// geometries with their derived dimensions.
package geo

import "math"

// Point holds plane coordinates. Units must be consistent throughout the
// model; millimetres are assumed in the examples and tests.
type Point struct {
	X float64 // horizontal coordinate
	Y float64 // vertical coordinate
}

// Dist returns the distance between p and q
func (p Point) Dist(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the signed angle of the segment p→q with respect to the
// horizontal axis
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Mid returns the midpoint between p and q
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2.0, (p.Y + q.Y) / 2.0}
}
