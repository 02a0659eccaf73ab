// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/andrefmello91/SPMElements-sub000/geo"
	"github.com/andrefmello91/SPMElements-sub000/mcon"
)

// Stringer represents an elastic 3-grip axial element. The local stiffness
// follows from the quadratic axial displacement field interpolated over the
// end and mid grips:
//
//	Kl = E⋅A/(3L) ⋅ | 7  -8   1 |
//	                |-8  16  -8 |
//	                | 1  -8   7 |
type Stringer struct {

	// basic data
	Nods [3]*Node              // end, mid and end grips
	Geo  *geo.StringerGeometry // geometry
	Mdl  mcon.Uniaxial         // material relation

	// matrices. computed eagerly at construction
	T  [][]float64 // [3][6] global-to-local transformation
	Kl [][]float64 // [3][3] local stiffness
	K  [][]float64 // [6][6] global stiffness

	// problem variables
	umap []int // assembly map

	// scratchpad
	ue []float64 // [6] grip displacements, global frame
	ul []float64 // [3] local axial displacements
	fl []float64 // [3] local axial forces
	fi []float64 // [6] internal forces, global frame
}

// newStringer allocates the elastic variant; see NewStringer
func newStringer(n1, n2, n3 *Node, width, height float64, mdl mcon.Uniaxial) (o *Stringer, err error) {
	g, err := geo.NewStringerGeometry(n1.Pos, n2.Pos, n3.Pos, width, height)
	if err != nil {
		return nil, err
	}
	o = &Stringer{Nods: [3]*Node{n1, n2, n3}, Geo: g, Mdl: mdl}
	o.T = la.MatAlloc(3, 6)
	o.Kl = la.MatAlloc(3, 3)
	o.K = la.MatAlloc(6, 6)
	o.umap = buildUmap(o.Grips())
	o.ue = make([]float64, 6)
	o.ul = make([]float64, 3)
	o.fl = make([]float64, 3)
	o.fi = make([]float64, 6)
	o.Recompute()
	return
}

// Recompute refreshes the transformation and stiffness matrices after the
// geometry has been mutated externally (Geo.Recompute must be called first)
func (o *Stringer) Recompute() {

	// transformation: one direction-cosine block per grip
	c, s := o.Geo.DirCos()
	la.MatFill(o.T, 0)
	for m := 0; m < 3; m++ {
		o.T[m][2*m] = c
		o.T[m][2*m+1] = s
	}

	// local and global stiffness
	α := o.Mdl.Stiffness() / (3.0 * o.Geo.L)
	o.Kl[0][0], o.Kl[0][1], o.Kl[0][2] = 7*α, -8*α, 1*α
	o.Kl[1][0], o.Kl[1][1], o.Kl[1][2] = -8*α, 16*α, -8*α
	o.Kl[2][0], o.Kl[2][1], o.Kl[2][2] = 1*α, -8*α, 7*α
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := tr(T)⋅Kl⋅T
}

// Grips returns the connected nodes
func (o *Stringer) Grips() []*Node { return o.Nods[:] }

// Umap returns the assembly map
func (o *Stringer) Umap() []int { return o.umap }

// UpdateDisplacements pulls the grip displacements into the element
func (o *Stringer) UpdateDisplacements() {
	pullDisps(o.Grips(), o.ue)
	la.MatVecMul(o.ul, 1, o.T, o.ue) // ul := T⋅ue
}

// CalculateForces computes local and global internal forces
func (o *Stringer) CalculateForces() (err error) {
	la.MatVecMul(o.fl, 1, o.Kl, o.ul)        // fl := Kl⋅ul
	la.VecFill(o.fi, 0)                      //
	la.MatTrVecMulAdd(o.fi, 1.0, o.T, o.fl)  // fi := tr(T)⋅fl
	for i := range o.fi {
		o.fi[i] = mcon.ChopForce(o.fi[i])
	}
	return
}

// UpdateStiffness is a no-op for the elastic variant
func (o *Stringer) UpdateStiffness() (err error) { return }

// Forces returns the global force vector
func (o *Stringer) Forces() []float64 { return o.fi }

// Stiffness returns the global stiffness matrix
func (o *Stringer) Stiffness() [][]float64 { return o.K }

// NewStringer returns a stringer connecting grips n1-n2-n3 (n2 at the
// midpoint) with the given rectangular cross section, material relation and
// element model
func NewStringer(n1, n2, n3 *Node, width, height float64, mdl mcon.Uniaxial, model ElementModel) (Elem, error) {
	if model == Nonlinear {
		return newNLStringer(n1, n2, n3, width, height, mdl)
	}
	return newStringer(n1, n2, n3, width, height, mdl)
}
