// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form solutions used to verify the finite
// elements: the 3-grip quadratic axial bar and the rectangular shear panel.
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// AxialBar is a prismatic bar with axial stiffness EA and length L,
// interpolated quadratically over end and mid grips
type AxialBar struct {
	EA float64 // axial stiffness
	L  float64 // length between end grips
}

// Stiffness returns the local stiffness matrix
func (o AxialBar) Stiffness() [][]float64 {
	α := o.EA / (3.0 * o.L)
	return [][]float64{
		{7 * α, -8 * α, 1 * α},
		{-8 * α, 16 * α, -8 * α},
		{1 * α, -8 * α, 7 * α},
	}
}

// UniformStretchForces returns the local grip forces for an end
// displacement δ with the mid grip at δ/2: the bar carries the constant
// normal force EA δ/L and the mid grip stays in equilibrium
func (o AxialBar) UniformStretchForces(δ float64) []float64 {
	f := o.EA * δ / o.L
	return []float64{-f, 0, f}
}

// CheckKl compares a computed local stiffness against the closed form
func (o AxialBar) CheckKl(tst *testing.T, tol float64, Kl [][]float64) {
	chk.Matrix(tst, "Kl bar", tol, Kl, o.Stiffness())
}
