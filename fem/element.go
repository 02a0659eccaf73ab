// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ElementModel selects the formulation of an element
type ElementModel int

// element models
const (
	Elastic   ElementModel = iota // closed-form linear stiffness
	Nonlinear                     // incremental-iterative material response
)

// Elem defines the per-iteration contract between an element and the
// external driver. Once per global solve iteration the driver calls, in
// this order: UpdateDisplacements, CalculateForces, UpdateStiffness; it
// then reads Forces and Stiffness for assembly. Elements are not safe for
// concurrent use; distinct elements may be evaluated in parallel as long
// as node displacements are not mutated meanwhile.
type Elem interface {
	Grips() []*Node          // connected nodes
	Umap() []int             // assembly map (global equation numbers)
	UpdateDisplacements()    // pull grip displacements into the element
	CalculateForces() error  // compute the global force vector
	UpdateStiffness() error  // recompute stiffness; no-op for elastic elements
	Forces() []float64       // global force vector
	Stiffness() [][]float64  // global stiffness matrix
}

// NonlinElem is implemented by elements carrying irreversible material
// state. Commit accepts the current trial state as converged; Restore
// discards it so a rejected global iteration can be retried.
type NonlinElem interface {
	Elem
	Commit()
	Restore()
}

// buildUmap assembles the equation numbers of a grip list
func buildUmap(grips []*Node) (umap []int) {
	umap = make([]int, 2*len(grips))
	for m, nod := range grips {
		ix, iy := nod.DofIndices()
		umap[2*m] = ix
		umap[2*m+1] = iy
	}
	return
}

// pullDisps copies the grip displacements into ue following umap order
func pullDisps(grips []*Node, ue []float64) {
	for m, nod := range grips {
		ue[2*m] = nod.U[0]
		ue[2*m+1] = nod.U[1]
	}
}
