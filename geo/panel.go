// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RECTOL is the tolerance used to detect rectangular panels
const RECTOL = 1e-6

// Vertices holds the four corners of a panel, ordered counter-clockwise
// starting at the bottom-left corner
type Vertices [4]Point

// Edge holds the derived data of one panel edge. Edge 1 connects vertices 1
// and 2 (bottom), edge 2 vertices 2 and 3 (right), edge 3 vertices 3 and 4
// (top) and edge 4 vertices 4 and 1 (left)
type Edge struct {
	Length float64 // length
	Angle  float64 // signed angle w.r.t. the horizontal
	Center Point   // centre point; the grip sits here

	// StringerDim is the width of the stringer bordering this edge. It is
	// assigned by the mesher after construction and corrects the effective
	// panel dimensions in the nonlinear formulation.
	StringerDim float64
}

// PanelGeometry holds the geometry of a 4-grip quadrilateral panel. Grips
// sit at the edge centres.
type PanelGeometry struct {

	// essential
	Verts Vertices // corners, counter-clockwise
	Width float64  // out-of-plane width

	// derived. see Recompute
	Edges [4]Edge // edge data
	A     float64 // a: mean horizontal dimension
	B     float64 // b: mean vertical dimension
	C     float64 // c: horizontal skew deviation; zero for rectangles
	D     float64 // d: vertical skew deviation; zero for rectangles
	Rect  bool    // the four edges form right angles
}

// NewPanelGeometry returns the geometry of a panel given its corners and
// width. It fails with a degenerate-geometry error for zero-width panels,
// for corner sets enclosing (nearly) no area and for corner orderings not
// starting at the bottom-left corner.
func NewPanelGeometry(verts Vertices, width float64) (o *PanelGeometry, err error) {
	if width < MINLEN {
		return nil, chk.Err("degenerate geometry: panel width %g is invalid", width)
	}
	o = &PanelGeometry{Verts: verts, Width: width}
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// Recompute refreshes edges, dimensions and the rectangularity flag after
// the vertices have been mutated
func (o *PanelGeometry) Recompute() (err error) {

	// area (shoelace); requires counter-clockwise corners
	area := 0.0
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		area += o.Verts[i].X*o.Verts[j].Y - o.Verts[j].X*o.Verts[i].Y
	}
	area /= 2.0
	if area < MINLEN {
		return chk.Err("degenerate geometry: panel with area %g; corners must be counter-clockwise and enclose a finite area", area)
	}

	// edges
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		o.Edges[i].Length = o.Verts[i].Dist(o.Verts[j])
		if o.Edges[i].Length < MINLEN {
			return chk.Err("degenerate geometry: panel edge %d has zero length", i+1)
		}
		o.Edges[i].Angle = o.Verts[i].AngleTo(o.Verts[j])
		o.Edges[i].Center = o.Verts[i].Mid(o.Verts[j])
	}

	// dimensions
	x1, y1 := o.Verts[0].X, o.Verts[0].Y
	x2, y2 := o.Verts[1].X, o.Verts[1].Y
	x3, y3 := o.Verts[2].X, o.Verts[2].Y
	x4, y4 := o.Verts[3].X, o.Verts[3].Y
	o.A = (x2 + x3 - x1 - x4) / 2.0
	o.B = (y3 + y4 - y1 - y2) / 2.0
	o.C = (x3 + x4 - x1 - x2) / 2.0
	o.D = (y2 + y3 - y1 - y4) / 2.0

	// both stiffness derivations assume positive mean dimensions; a corner
	// list rotated away from the bottom-left start violates this
	if o.A < MINLEN || o.B < MINLEN {
		return chk.Err("degenerate geometry: panel dimensions a=%g b=%g are invalid; corners must be ordered counter-clockwise starting at the bottom-left", o.A, o.B)
	}

	// rectangularity: consecutive edges must form right angles
	o.Rect = true
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		dα := math.Abs(o.Edges[j].Angle - o.Edges[i].Angle)
		for dα > math.Pi {
			dα -= math.Pi
		}
		if math.Abs(dα-math.Pi/2.0) > RECTOL {
			o.Rect = false
			break
		}
	}
	return
}

// GripPositions returns the positions of the four grips (edge centres)
func (o *PanelGeometry) GripPositions() (pts [4]Point) {
	for i := 0; i < 4; i++ {
		pts[i] = o.Edges[i].Center
	}
	return
}
