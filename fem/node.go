// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the two finite elements of the stringer-panel
// method for reinforced concrete membranes: stringers (3-grip axial
// members) and panels (4-grip shear membranes), each in an elastic and a
// nonlinear variant. The package owns the element-level mechanics only;
// global assembly, load stepping and convergence control belong to an
// external driver that honours the per-iteration contract of Elem.
package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/andrefmello91/SPMElements-sub000/geo"
)

// Constraint flags the supported directions of a node
type Constraint int

// constraint kinds
const (
	Free    Constraint = iota // both directions free
	FixedX                    // x direction constrained
	FixedY                    // y direction constrained
	FixedXY                   // both directions constrained
)

// Node is a grip shared by the elements connected to it. The external
// solver writes U once per iteration; elements only read it.
type Node struct {

	// essential
	Pos  geo.Point  // position
	Cons Constraint // boundary constraint
	F    [2]float64 // applied external force
	U    [2]float64 // solved displacement; written by the external solver

	// identity. immutable after construction
	number int // 1-based node number
}

// NewNode returns a new node. The number is 1-based and fixes the global
// DoF pair for the life of the node.
func NewNode(number int, pos geo.Point) (*Node, error) {
	if number < 1 {
		return nil, chk.Err("node number must be 1-based; got %d", number)
	}
	return &Node{Pos: pos, number: number}, nil
}

// Number returns the 1-based node number
func (o *Node) Number() int { return o.number }

// DofIndices returns the two global equation numbers owned by this node
func (o *Node) DofIndices() (ix, iy int) {
	return 2*o.number - 2, 2*o.number - 1
}
