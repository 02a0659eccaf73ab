// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/SPMElements-sub000/geo"
	"github.com/andrefmello91/SPMElements-sub000/mcon"
)

// Panel represents an elastic 4-grip quadrilateral membrane element with
// grips at the edge centres. The local stiffness relates the four
// edge-aligned grip displacements; rectangular panels use the closed form
//
//	Kl = Gc⋅w ⋅ | a/b  -1   a/b  -1  |
//	            | -1   b/a  -1   b/a |
//	            | a/b  -1   a/b  -1  |
//	            | -1   b/a  -1   b/a |
//
// and non-rectangular panels use the determinant-based equilibrium
// derivation (see stiffnessGeneral).
type Panel struct {

	// basic data
	Nods [4]*Node           // grips at edge centres, counter-clockwise from the bottom
	Geo  *geo.PanelGeometry // geometry
	Mdl  mcon.Membrane      // material relation

	// matrices. computed eagerly at construction
	T  [][]float64 // [4][8] global-to-local transformation
	Kl [][]float64 // [4][4] local stiffness
	K  [][]float64 // [8][8] global stiffness

	// problem variables
	umap []int // assembly map

	// scratchpad
	ue []float64 // [8] grip displacements, global frame
	ul []float64 // [4] local edge-aligned displacements
	fl []float64 // [4] local forces
	fi []float64 // [8] internal forces, global frame
}

// newPanel allocates the elastic variant; see NewPanel
func newPanel(nods [4]*Node, verts geo.Vertices, width float64, mdl mcon.Membrane) (o *Panel, err error) {
	g, err := geo.NewPanelGeometry(verts, width)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ {
		if nods[i].Pos.Dist(g.Edges[i].Center) > 1e-6*g.Edges[i].Length {
			return nil, chk.Err("degenerate geometry: grip %d at (%g,%g) is not at the centre of edge %d", i+1, nods[i].Pos.X, nods[i].Pos.Y, i+1)
		}
	}
	o = &Panel{Nods: nods, Geo: g, Mdl: mdl}
	o.T = la.MatAlloc(4, 8)
	o.Kl = la.MatAlloc(4, 4)
	o.K = la.MatAlloc(8, 8)
	o.umap = buildUmap(o.Grips())
	o.ue = make([]float64, 8)
	o.ul = make([]float64, 4)
	o.fl = make([]float64, 4)
	o.fi = make([]float64, 8)
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// Recompute refreshes the transformation and stiffness matrices after the
// geometry has been mutated externally (Geo.Recompute must be called first)
func (o *Panel) Recompute() (err error) {

	// transformation: one direction-cosine block per edge
	la.MatFill(o.T, 0)
	for m := 0; m < 4; m++ {
		α := o.Geo.Edges[m].Angle
		o.T[m][2*m] = math.Cos(α)
		o.T[m][2*m+1] = math.Sin(α)
	}

	// local stiffness
	if o.Geo.Rect {
		o.stiffnessRectangular()
	} else {
		err = o.stiffnessGeneral()
		if err != nil {
			return
		}
	}

	// global stiffness
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := tr(T)⋅Kl⋅T
	return
}

// stiffnessRectangular fills Kl with the closed-form rectangular stiffness
func (o *Panel) stiffnessRectangular() {
	gw := o.Mdl.Gc() * o.Geo.Width
	ab := o.Geo.A / o.Geo.B
	ba := o.Geo.B / o.Geo.A
	for i := 0; i < 4; i += 2 {
		for j := 0; j < 4; j += 2 {
			o.Kl[i][j] = gw * ab
			o.Kl[i+1][j+1] = gw * ba
			o.Kl[i][j+1] = -gw
			o.Kl[i+1][j] = -gw
		}
	}
}

// stiffnessGeneral fills Kl with the determinant-based stiffness of a
// non-rectangular quadrilateral. The four equilibrium determinants k1..k4
// and the kinematic coefficients t1..t4 combine into the rank-one form
// Kl = B⋅D⋅tr(B); a near-zero denominator kf⋅ku flags a near-degenerate
// quadrilateral and is reported as a singular stiffness.
func (o *Panel) stiffnessGeneral() (err error) {
	x1, y1 := o.Geo.Verts[0].X, o.Geo.Verts[0].Y
	x2, y2 := o.Geo.Verts[1].X, o.Geo.Verts[1].Y
	x3, y3 := o.Geo.Verts[2].X, o.Geo.Verts[2].Y
	x4, y4 := o.Geo.Verts[3].X, o.Geo.Verts[3].Y

	// edge projections and cross products
	c1, c2, c3, c4 := x2-x1, x3-x2, x4-x3, x1-x4
	s1, s2, s3, s4 := y2-y1, y3-y2, y4-y3, y1-y4
	r1 := x1*y2 - x2*y1
	r2 := x2*y3 - x3*y2
	r3 := x3*y4 - x4*y3
	r4 := x4*y1 - x1*y4

	// kinematic coefficients
	a, b, c, d := o.Geo.A, o.Geo.B, o.Geo.C, o.Geo.D
	t1 := -b*c1 - c*s1
	t2 := +a*s2 + d*c2
	t3 := +b*c3 + c*s3
	t4 := -a*s4 - d*c4

	// equilibrium determinants
	k1 := det3(c2, c3, c4, s2, s3, s4, r2, r3, r4)
	k2 := det3(c1, c3, c4, s1, s3, s4, r1, r3, r4)
	k3 := det3(c1, c2, c4, s1, s2, s4, r1, r2, r4)
	k4 := det3(c1, c2, c3, s1, s2, s3, r1, r2, r3)

	// scalars
	kf := k1 + k2 + k3 + k4
	ku := -t1*k1 + t2*k2 - t3*k3 + t4*k4

	// guard near-degenerate quadrilaterals
	lref := math.Max(math.Max(o.Geo.Edges[0].Length, o.Geo.Edges[1].Length), math.Max(o.Geo.Edges[2].Length, o.Geo.Edges[3].Length))
	if math.Abs(kf*ku) < 1e-12*math.Pow(lref, 10) {
		return chk.Err("singular stiffness: panel with kf⋅ku = %g is nearly degenerate", kf*ku)
	}

	// Kl := B⋅D⋅tr(B)
	D := 16.0 * o.Mdl.Gc() * o.Geo.Width / (kf * ku)
	B := []float64{
		-k1 * o.Geo.Edges[0].Length,
		+k2 * o.Geo.Edges[1].Length,
		-k3 * o.Geo.Edges[2].Length,
		+k4 * o.Geo.Edges[3].Length,
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			o.Kl[i][j] = B[i] * D * B[j]
		}
	}
	return
}

// Grips returns the connected nodes
func (o *Panel) Grips() []*Node { return o.Nods[:] }

// Umap returns the assembly map
func (o *Panel) Umap() []int { return o.umap }

// UpdateDisplacements pulls the grip displacements into the element
func (o *Panel) UpdateDisplacements() {
	pullDisps(o.Grips(), o.ue)
	la.MatVecMul(o.ul, 1, o.T, o.ue) // ul := T⋅ue
}

// CalculateForces computes local and global internal forces
func (o *Panel) CalculateForces() (err error) {
	la.MatVecMul(o.fl, 1, o.Kl, o.ul)       // fl := Kl⋅ul
	la.VecFill(o.fi, 0)                     //
	la.MatTrVecMulAdd(o.fi, 1.0, o.T, o.fl) // fi := tr(T)⋅fl
	for i := range o.fi {
		o.fi[i] = mcon.ChopForce(o.fi[i])
	}
	return
}

// UpdateStiffness is a no-op for the elastic variant
func (o *Panel) UpdateStiffness() (err error) { return }

// Forces returns the global force vector
func (o *Panel) Forces() []float64 { return o.fi }

// Stiffness returns the global stiffness matrix
func (o *Panel) Stiffness() [][]float64 { return o.K }

// NewPanel returns a panel with the given corners, grips at the edge
// centres, width, material relation and element model
func NewPanel(nods [4]*Node, verts geo.Vertices, width float64, mdl mcon.Membrane, model ElementModel) (Elem, error) {
	if model == Nonlinear {
		return newNLPanel(nods, verts, width, mdl)
	}
	return newPanel(nods, verts, width, mdl)
}

// det3 returns the determinant of a 3×3 matrix given row-wise
func det3(a11, a12, a13, a21, a22, a23, a31, a32, a33 float64) float64 {
	return a11*(a22*a33-a23*a32) - a12*(a21*a33-a23*a31) + a13*(a21*a32-a22*a31)
}
