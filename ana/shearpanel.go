// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// ShearPanel is a rectangular panel of dimensions A times B, out-of-plane
// width W and concrete shear modulus Gc, with grips at the edge centres
type ShearPanel struct {
	Gc float64 // concrete shear modulus
	W  float64 // out-of-plane width
	A  float64 // horizontal dimension
	B  float64 // vertical dimension
}

// Stiffness returns the local stiffness matrix relating the four
// edge-aligned grip displacements
func (o ShearPanel) Stiffness() [][]float64 {
	gw := o.Gc * o.W
	ab := o.A / o.B
	ba := o.B / o.A
	return [][]float64{
		{gw * ab, -gw, gw * ab, -gw},
		{-gw, gw * ba, -gw, gw * ba},
		{gw * ab, -gw, gw * ab, -gw},
		{-gw, gw * ba, -gw, gw * ba},
	}
}

// ShearForces returns the local grip forces for equal tangential
// displacements δ of the bottom and top grips of a square panel
func (o ShearPanel) ShearForces(δ float64) []float64 {
	f := 2.0 * o.Gc * o.W * δ
	return []float64{f, -f, f, -f}
}

// CheckKl compares a computed local stiffness against the closed form
func (o ShearPanel) CheckKl(tst *testing.T, tol float64, Kl [][]float64) {
	chk.Matrix(tst, "Kl panel", tol, Kl, o.Stiffness())
}
