// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcon

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// ElasticMembrane implements a linear-elastic plane-stress relation with no
// reinforcement. It is used by elastic panels and as a reference in tests.
type ElasticMembrane struct {

	// parameters
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio

	// derived
	dc [][]float64 // [3][3] plane-stress stiffness
	ds [][]float64 // [3][3] zero reinforcement stiffness
}

// add model to registry
func init() {
	memallocators["elastic-membrane"] = func() Membrane { return new(ElasticMembrane) }
}

// Init initialises the model
func (o *ElasticMembrane) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		default:
			return chk.Err("elastic-membrane: parameter named %q is invalid", p.N)
		}
	}
	if o.E < 1e-9 || o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("elastic-membrane: E must be positive and 0 ≤ nu < 0.5")
	}
	α := o.E / (1.0 - o.Nu*o.Nu)
	o.dc = [][]float64{
		{α, α * o.Nu, 0},
		{α * o.Nu, α, 0},
		{0, 0, α * (1.0 - o.Nu) / 2.0},
	}
	o.ds = la.MatAlloc(3, 3)
	return
}

// GetPrms returns an example set of parameters [MPa]
func (o ElasticMembrane) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 30000},
		&fun.Prm{N: "nu", V: 0.2},
	}
}

// Gc returns the shear modulus
func (o *ElasticMembrane) Gc() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Calculate returns stresses and secant stiffnesses for the given strains
func (o *ElasticMembrane) Calculate(s *MembraneState, ε []float64) (σc, σs []float64, Dc, Ds [][]float64, err error) {
	if len(ε) != 3 {
		err = chk.Err("elastic-membrane: strain vector must have 3 components; got %d", len(ε))
		return
	}
	σc = make([]float64, 3)
	σs = make([]float64, 3)
	la.MatVecMul(σc, 1, o.dc, ε)
	copy(s.Eps, ε)
	return σc, σs, o.dc, o.ds, nil
}
