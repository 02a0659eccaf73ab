// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mcon provides the material collaborators consumed by stringer and
// panel elements: uniaxial concrete+reinforcement relations for axial
// members and biaxial membrane relations for shear panels. Constitutive
// laws are pluggable; this package carries the interfaces, a registry of
// model allocators and reference implementations.
package mcon

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// ZEROSTRAIN and ZEROFORCE are the tolerances below which computed strains
// and forces are coerced to exact zero, so that later branch selections do
// not act on numerical noise
const (
	ZEROSTRAIN = 1e-12
	ZEROFORCE  = 1e-6
)

// Uniaxial defines the axial force-strain relation of a reinforced-concrete
// member. Calculate returns the normal force and the tangent dN/dε for a
// given axial strain; models are stateless and deterministic.
type Uniaxial interface {
	Init(prms fun.Prms) error // Init initialises the model with named parameters
	GetPrms() fun.Prms        // GetPrms returns an example set of parameters

	// Calculate returns the normal force N and the tangent stiffness dN/dε
	// corresponding to the axial strain ε
	Calculate(ε float64) (N, D float64)

	// thresholds consumed by the nonlinear stringer
	Stiffness() float64           // initial axial stiffness EA (concrete + steel)
	CrackingForce() float64       // force at concrete cracking (> 0)
	YieldForce() float64          // force at reinforcement yielding (> 0)
	MaxCompressiveForce() float64 // maximum compressive force (< 0)
	CrackingStrain() float64      // strain at concrete cracking (> 0)
	YieldStrain() float64         // strain at reinforcement yielding (> 0)
}

// MembraneState holds the per-integration-point state of a membrane
// relation. Flags are monotone: once raised they are never cleared.
type MembraneState struct {
	Cracked  bool      // concrete has cracked
	Yielding bool      // smeared reinforcement is yielding
	Eps      []float64 // last strain state {εx, εy, γxy}
}

// NewMembraneState allocates a membrane state
func NewMembraneState() *MembraneState {
	return &MembraneState{Eps: make([]float64, 3)}
}

// Set copies other into o. Both must have been pre-allocated.
func (o *MembraneState) Set(other *MembraneState) {
	o.Cracked = other.Cracked
	o.Yielding = other.Yielding
	copy(o.Eps, other.Eps)
}

// GetCopy returns a copy of this state
func (o *MembraneState) GetCopy() *MembraneState {
	other := NewMembraneState()
	other.Set(o)
	return other
}

// Membrane defines the biaxial stress-strain relation of a reinforced
// concrete membrane. Calculate splits the response into concrete and
// smeared-reinforcement parts, each with its own secant stiffness.
type Membrane interface {
	Init(prms fun.Prms) error // Init initialises the model with named parameters
	GetPrms() fun.Prms        // GetPrms returns an example set of parameters
	Gc() float64              // Gc returns the concrete shear modulus

	// Calculate updates the state for the total strains ε = {εx, εy, γxy}
	// and returns concrete and reinforcement stresses with the
	// corresponding secant stiffness matrices [3][3]
	Calculate(s *MembraneState, ε []float64) (σc, σs []float64, Dc, Ds [][]float64, err error)
}

// allocators of models
var (
	uniallocators = map[string]func() Uniaxial{}
	memallocators = map[string]func() Membrane{}
)

// NewUniaxial returns a new uniaxial model or nil if the name is unknown
func NewUniaxial(name string) Uniaxial {
	if alloc, ok := uniallocators[name]; ok {
		return alloc()
	}
	return nil
}

// NewMembrane returns a new membrane model or nil if the name is unknown
func NewMembrane(name string) Membrane {
	if alloc, ok := memallocators[name]; ok {
		return alloc()
	}
	return nil
}

// ChopStrain coerces numerical noise in a strain value to exact zero
func ChopStrain(ε float64) float64 {
	if math.Abs(ε) < ZEROSTRAIN {
		return 0
	}
	return ε
}

// ChopForce coerces numerical noise in a force value to exact zero
func ChopForce(f float64) float64 {
	if math.Abs(f) < ZEROFORCE {
		return 0
	}
	return f
}
