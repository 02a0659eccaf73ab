// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/SPMElements-sub000/geo"
	"github.com/andrefmello91/SPMElements-sub000/mcon"
)

// NLPanel represents a nonlinear 4-grip membrane element. Corner grip
// displacements map to strains at four edge-centre integration points
// through the kinematic matrix BA; each point is evaluated by the biaxial
// membrane relation; the resulting concrete and reinforcement stresses map
// back to eight generalized grip forces through the equilibrium matrices
// Pc/Ps and the rigid-body correction Q.
type NLPanel struct {
	Panel // elastic bookkeeping: grips, geometry, maps, scratchpad

	// kinematic and equilibrium matrices. computed eagerly at construction
	BA [][]float64 // [12][8] grip displacements → integration point strains
	Pc [][]float64 // [8][12] concrete stresses → grip forces
	Ps [][]float64 // [8][12] reinforcement stresses → grip forces
	Q  [][]float64 // [8][8] rigid-body correction

	// integration point states (current and committed)
	States    [4]*mcon.MembraneState
	StatesBkp [4]*mcon.MembraneState

	// stress vectors: 3 components × 4 points
	Sc []float64 // [12] concrete stresses
	Ss []float64 // [12] reinforcement stresses

	// material stiffness, block diagonal per integration point
	Dc [][]float64 // [12][12] concrete
	Ds [][]float64 // [12][12] reinforcement

	// scratchpad
	εv  []float64   // [12] strain vector
	fr  []float64   // [8] raw grip forces
	pd  [][]float64 // [8][12] Pc⋅Dc + Ps⋅Ds
	pdb [][]float64 // [8][8] (Pc⋅Dc + Ps⋅Ds)⋅BA
	aux [][]float64 // [8][12] scratch product
}

// newNLPanel allocates the nonlinear variant; see NewPanel
func newNLPanel(nods [4]*Node, verts geo.Vertices, width float64, mdl mcon.Membrane) (o *NLPanel, err error) {
	lin, err := newPanel(nods, verts, width, mdl)
	if err != nil {
		return nil, err
	}
	o = &NLPanel{Panel: *lin}
	for k := 0; k < 4; k++ {
		o.States[k] = mcon.NewMembraneState()
		o.StatesBkp[k] = mcon.NewMembraneState()
	}
	o.BA = la.MatAlloc(12, 8)
	o.Pc = la.MatAlloc(8, 12)
	o.Ps = la.MatAlloc(8, 12)
	o.Q = la.MatAlloc(8, 8)
	o.Sc = make([]float64, 12)
	o.Ss = make([]float64, 12)
	o.Dc = la.MatAlloc(12, 12)
	o.Ds = la.MatAlloc(12, 12)
	o.εv = make([]float64, 12)
	o.fr = make([]float64, 8)
	o.pd = la.MatAlloc(8, 12)
	o.pdb = la.MatAlloc(8, 8)
	o.aux = la.MatAlloc(8, 12)
	err = o.buildBA()
	if err != nil {
		return nil, err
	}
	o.buildP()
	err = o.buildQ()
	if err != nil {
		return nil, err
	}

	// initial stiffness from the uncracked material
	err = o.CalculateForces()
	if err != nil {
		return nil, err
	}
	err = o.UpdateStiffness()
	if err != nil {
		return nil, err
	}
	return
}

// buildBA assembles BA = B⋅A. The five generalized strain parameters are
// the mean normal strains, the mean shear strain and the two linearly
// varying shear modes the edge grips can represent; B evaluates them at
// the four edge-centre integration points.
func (o *NLPanel) buildBA() (err error) {
	a, b, c, d := o.Geo.A, o.Geo.B, o.Geo.C, o.Geo.D
	t1 := a*b - c*d
	t2 := a*a - c*c
	t3 := b*b - d*d
	lref := a*a + b*b
	if abs(t1) < 1e-9*lref || abs(t2) < 1e-9*lref || abs(t3) < 1e-9*lref {
		return chk.Err("degenerate geometry: panel dimensions (a=%g b=%g c=%g d=%g) give a singular kinematic map", a, b, c, d)
	}

	// A matrix [5][8]
	at1, bt1, ct1, dt1 := a/t1, b/t1, c/t1, d/t1
	at2 := 2.0 * a / t2
	bt3 := 2.0 * b / t3
	A := [][]float64{
		{dt1, 0, bt1, 0, -dt1, 0, -bt1, 0},
		{0, -at1, 0, -ct1, 0, at1, 0, ct1},
		{-at1, dt1, -ct1, bt1, at1, -dt1, ct1, -bt1},
		{0, -at2, 0, at2, 0, -at2, 0, at2},
		{bt3, 0, -bt3, 0, bt3, 0, -bt3, 0},
	}

	// B matrix [12][5]: per point, rows {εx, εy, γ}
	B := [][]float64{
		{1, 0, 0, 0, 0}, {0, 1, 0, 0, 0}, {0, 0, 1, 0, -1}, // bottom
		{1, 0, 0, 0, 0}, {0, 1, 0, 0, 0}, {0, 0, 1, 1, 0}, // right
		{1, 0, 0, 0, 0}, {0, 1, 0, 0, 0}, {0, 0, 1, 0, 1}, // top
		{1, 0, 0, 0, 0}, {0, 1, 0, 0, 0}, {0, 0, 1, -1, 0}, // left
	}
	la.MatMul(o.BA, 1, B, A)
	return
}

// buildP assembles the equilibrium matrices mapping integration point
// stresses to grip forces, f = w⋅l⋅σ⋅n per edge. The reinforcement acts
// over the edge length reduced by the bearing widths of the bordering
// stringers, floored at zero by checkT3.
func (o *NLPanel) buildP() {
	w := o.Geo.Width
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		ci := o.Geo.Verts[j].X - o.Geo.Verts[i].X
		si := o.Geo.Verts[j].Y - o.Geo.Verts[i].Y

		// concrete: full edge
		o.Pc[2*i][3*i] = w * si
		o.Pc[2*i][3*i+2] = -w * ci
		o.Pc[2*i+1][3*i+1] = -w * ci
		o.Pc[2*i+1][3*i+2] = w * si

		// reinforcement: effective edge length
		li := o.Geo.Edges[i].Length
		sd := 0.5 * (o.Geo.Edges[(i+1)%4].StringerDim + o.Geo.Edges[(i+3)%4].StringerDim)
		ratio := checkT3(li-sd) / li
		o.Ps[2*i][3*i] = w * si * ratio
		o.Ps[2*i][3*i+2] = -w * ci * ratio
		o.Ps[2*i+1][3*i+1] = -w * ci * ratio
		o.Ps[2*i+1][3*i+2] = w * si * ratio
	}
}

// buildQ assembles the rigid-body correction: the orthogonal projector
// removing the components of the raw force vector along the three
// rigid-body modes evaluated at the grip positions
func (o *NLPanel) buildQ() (err error) {

	// panel centre
	var x0, y0 float64
	for i := 0; i < 4; i++ {
		x0 += o.Geo.Edges[i].Center.X / 4.0
		y0 += o.Geo.Edges[i].Center.Y / 4.0
	}

	// rigid-body modes
	G := la.MatAlloc(8, 3)
	for i := 0; i < 4; i++ {
		xi := o.Geo.Edges[i].Center.X - x0
		yi := o.Geo.Edges[i].Center.Y - y0
		G[2*i][0] = 1
		G[2*i+1][1] = 1
		G[2*i][2] = -yi
		G[2*i+1][2] = xi
	}

	// Q := I - G⋅inv(tr(G)⋅G)⋅tr(G)
	gtg := la.MatAlloc(3, 3)
	gti := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 8; k++ {
				gtg[i][j] += G[k][i] * G[k][j]
			}
		}
	}
	err = la.MatInvG(gti, gtg, 1e-10)
	if err != nil {
		return chk.Err("singular stiffness: rigid-body modes of panel are linearly dependent: %v", err)
	}
	gg := la.MatAlloc(8, 3)
	la.MatMul(gg, 1, G, gti)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			o.Q[i][j] = 0
			if i == j {
				o.Q[i][j] = 1
			}
			for k := 0; k < 3; k++ {
				o.Q[i][j] -= gg[i][k] * G[j][k]
			}
		}
	}
	return
}

// Recompute refreshes the elastic matrices and the kinematic and
// equilibrium maps after the geometry has been mutated externally, e.g.
// after the mesher assigned the stringer bearing widths to the edges
func (o *NLPanel) Recompute() (err error) {
	err = o.Panel.Recompute()
	if err != nil {
		return
	}
	err = o.buildBA()
	if err != nil {
		return
	}
	o.buildP()
	return o.buildQ()
}

// UpdateDisplacements pulls the grip displacements into the element
func (o *NLPanel) UpdateDisplacements() {
	pullDisps(o.Grips(), o.ue)
}

// CalculateForces evaluates the four integration points for the current
// grip displacements and assembles the generalized grip forces
func (o *NLPanel) CalculateForces() (err error) {

	// strains at integration points
	la.MatVecMul(o.εv, 1, o.BA, o.ue) // εv := BA⋅ue

	// material response per point
	for k := 0; k < 4; k++ {
		σc, σs, dc, ds, e := o.Mdl.Calculate(o.States[k], o.εv[3*k:3*k+3])
		if e != nil {
			return chk.Err("material inversion: panel integration point %d failed: %v", k+1, e)
		}
		for i := 0; i < 3; i++ {
			o.Sc[3*k+i] = σc[i]
			o.Ss[3*k+i] = σs[i]
			for j := 0; j < 3; j++ {
				o.Dc[3*k+i][3*k+j] = dc[i][j]
				o.Ds[3*k+i][3*k+j] = ds[i][j]
			}
		}
	}

	// raw grip forces: fr := Pc⋅σc + Ps⋅σs
	la.VecFill(o.fr, 0)
	for i := 0; i < 8; i++ {
		for j := 0; j < 12; j++ {
			o.fr[i] += o.Pc[i][j]*o.Sc[j] + o.Ps[i][j]*o.Ss[j]
		}
	}

	// rigid-body correction: fi := Q⋅fr
	la.MatVecMul(o.fi, 1, o.Q, o.fr)
	for i := range o.fi {
		o.fi[i] = mcon.ChopForce(o.fi[i])
	}
	return
}

// UpdateStiffness recombines K = Q⋅(Pc⋅Dc + Ps⋅Ds)⋅BA with the secant
// material stiffnesses of the four integration points
func (o *NLPanel) UpdateStiffness() (err error) {
	la.MatMul(o.pd, 1, o.Pc, o.Dc)  // pd  := Pc⋅Dc
	la.MatMul(o.aux, 1, o.Ps, o.Ds) // aux := Ps⋅Ds
	for i := 0; i < 8; i++ {
		for j := 0; j < 12; j++ {
			o.pd[i][j] += o.aux[i][j]
		}
	}
	la.MatMul(o.pdb, 1, o.pd, o.BA) // pdb := (Pc⋅Dc + Ps⋅Ds)⋅BA
	la.MatMul(o.K, 1, o.Q, o.pdb)   // K   := Q⋅pdb
	return
}

// Commit accepts the trial integration point states as converged
func (o *NLPanel) Commit() {
	for k := 0; k < 4; k++ {
		o.StatesBkp[k].Set(o.States[k])
	}
}

// Restore discards the trial integration point states
func (o *NLPanel) Restore() {
	for k := 0; k < 4; k++ {
		o.States[k].Set(o.StatesBkp[k])
	}
}

// checkT3 floors a geometric length at zero, preventing a negative
// effective stringer-bearing width on heavily reinforced edges
func checkT3(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// abs returns |x|
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
