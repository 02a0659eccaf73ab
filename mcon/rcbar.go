// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcon

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// RCBar implements the axial force-strain relation of a reinforced concrete
// bar with distinct branches:
//
//	tension, uncracked  -- combined elastic stiffness Ec⋅Ac + Es⋅As
//	tension, cracked    -- steel plus tension-stiffened concrete
//	tension, yielding   -- yield plateau plus decaying tension stiffening
//	compression         -- parabolic concrete plus elastic/yielded steel
//	crushing            -- concrete exhausted; steel only
//
// Forces are positive in tension.
type RCBar struct {

	// parameters
	Ec  float64 // concrete Young's modulus
	Fc  float64 // concrete compressive strength (positive)
	Fct float64 // concrete tensile strength
	Es  float64 // steel Young's modulus
	Fy  float64 // steel yield stress
	Ac  float64 // concrete area
	As  float64 // reinforcement area; may be zero

	// derived
	εcr float64 // cracking strain
	εy  float64 // steel yield strain
	ε0  float64 // strain at concrete peak compressive stress (negative)
	ncr float64 // cracking force
	ny  float64 // yield force
	nc  float64 // maximum compressive force (negative)
}

// add model to registry
func init() {
	uniallocators["rc-bar"] = func() Uniaxial { return new(RCBar) }
}

// Init initialises the model
func (o *RCBar) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Ec":
			o.Ec = p.V
		case "fc":
			o.Fc = p.V
		case "fct":
			o.Fct = p.V
		case "Es":
			o.Es = p.V
		case "fy":
			o.Fy = p.V
		case "Ac":
			o.Ac = p.V
		case "As":
			o.As = p.V
		default:
			return chk.Err("rc-bar: parameter named %q is invalid", p.N)
		}
	}
	if o.Ec < 1e-9 || o.Fc < 1e-9 || o.Fct < 1e-9 || o.Ac < 1e-9 {
		return chk.Err("rc-bar: Ec, fc, fct and Ac must be positive")
	}
	if o.As > 0 && (o.Es < 1e-9 || o.Fy < 1e-9) {
		return chk.Err("rc-bar: Es and fy must be positive for reinforced bars")
	}

	// derived strains
	o.εcr = o.Fct / o.Ec
	o.ε0 = -2.0 * o.Fc / o.Ec
	if o.As > 0 {
		o.εy = o.Fy / o.Es
	} else {
		o.εy = o.εcr // unreinforced bars have no capacity beyond cracking
	}

	// derived forces, consistent with Calculate
	o.ncr = (o.Ec*o.Ac + o.Es*o.As) * o.εcr
	o.ny, _ = o.Calculate(o.εy)
	o.nc, _ = o.Calculate(o.ε0)
	return
}

// GetPrms returns an example set of parameters [MPa, mm]
func (o RCBar) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Ec", V: 30000},
		&fun.Prm{N: "fc", V: 30},
		&fun.Prm{N: "fct", V: 2.0},
		&fun.Prm{N: "Es", V: 210000},
		&fun.Prm{N: "fy", V: 500},
		&fun.Prm{N: "Ac", V: 10000},
		&fun.Prm{N: "As", V: 300},
	}
}

// tensionStiffening returns the concrete contribution after cracking and
// its derivative. The curve is continuous at the cracking strain.
func (o *RCBar) tensionStiffening(ε float64) (ts, dts float64) {
	num := o.Fct * o.Ac * (1.0 + math.Sqrt(500.0*o.εcr))
	den := 1.0 + math.Sqrt(500.0*ε)
	ts = num / den
	dts = -num * 250.0 / (math.Sqrt(500.0*ε) * den * den)
	return
}

// Calculate returns the normal force and the tangent dN/dε for a given
// axial strain
func (o *RCBar) Calculate(ε float64) (N, D float64) {
	ε = ChopStrain(ε)

	// tension
	if ε >= 0 {

		// uncracked
		if ε <= o.εcr {
			D = o.Ec*o.Ac + o.Es*o.As
			N = D * ε
			return
		}

		// cracked; steel elastic or yielding
		ts, dts := o.tensionStiffening(ε)
		if o.As > 0 && ε < o.εy {
			N = o.Es*o.As*ε + ts
			D = o.Es*o.As + dts
			return
		}
		N = o.Fy*o.As + ts
		D = dts
		return
	}

	// compression: steel part
	var Ns, Ds float64
	if o.As > 0 {
		if ε > -o.εy {
			Ns = o.Es * o.As * ε
			Ds = o.Es * o.As
		} else {
			Ns = -o.Fy * o.As
		}
	}

	// compression: parabolic concrete up to crushing
	η := ε / o.ε0
	if η <= 2.0 {
		N = -o.Fc*o.Ac*(2.0*η-η*η) + Ns
		D = -o.Fc*o.Ac*(2.0-2.0*η)/o.ε0 + Ds
		return
	}

	// crushed
	N = Ns
	D = Ds
	return
}

// Stiffness returns the initial axial stiffness EA
func (o *RCBar) Stiffness() float64 { return o.Ec*o.Ac + o.Es*o.As }

// CrackingForce returns the force at concrete cracking
func (o *RCBar) CrackingForce() float64 { return o.ncr }

// YieldForce returns the force at reinforcement yielding
func (o *RCBar) YieldForce() float64 { return o.ny }

// MaxCompressiveForce returns the maximum compressive force (negative)
func (o *RCBar) MaxCompressiveForce() float64 { return o.nc }

// CrackingStrain returns the strain at concrete cracking
func (o *RCBar) CrackingStrain() float64 { return o.εcr }

// YieldStrain returns the strain at reinforcement yielding
func (o *RCBar) YieldStrain() float64 { return o.εy }
