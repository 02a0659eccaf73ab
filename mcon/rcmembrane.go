// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcon

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// RCMembrane implements a smeared rotating-crack relation for reinforced
// concrete membranes. Concrete follows a plane-stress elastic law until the
// major principal strain reaches the cracking strain; after cracking, the
// response is rebuilt from secant moduli along the principal directions
// with tension softening and a parabolic compression branch. Reinforcement
// is smeared along x and y with a bilinear law.
type RCMembrane struct {

	// parameters
	Ec  float64 // concrete Young's modulus
	Fc  float64 // concrete compressive strength (positive)
	Fct float64 // concrete tensile strength
	Nu  float64 // Poisson's ratio (uncracked branch)
	Es  float64 // steel Young's modulus
	Fy  float64 // steel yield stress
	Rox float64 // reinforcement ratio along x
	Roy float64 // reinforcement ratio along y

	// derived
	εcr float64     // cracking strain
	ε0  float64     // strain at concrete peak compressive stress (negative)
	εy  float64     // steel yield strain
	de  [][]float64 // [3][3] uncracked plane-stress stiffness

	// scratchpad
	dp [][]float64 // [3][3] principal secant stiffness
	tt [][]float64 // [3][3] strain transformation
	dc [][]float64 // [3][3] cracked secant stiffness, xy frame
	ds [][]float64 // [3][3] reinforcement stiffness
	sc []float64   // [3] concrete stresses
	ss []float64   // [3] reinforcement stresses
}

// add model to registry
func init() {
	memallocators["rc-membrane"] = func() Membrane { return new(RCMembrane) }
}

// Init initialises the model
func (o *RCMembrane) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Ec":
			o.Ec = p.V
		case "fc":
			o.Fc = p.V
		case "fct":
			o.Fct = p.V
		case "nu":
			o.Nu = p.V
		case "Es":
			o.Es = p.V
		case "fy":
			o.Fy = p.V
		case "rox":
			o.Rox = p.V
		case "roy":
			o.Roy = p.V
		default:
			return chk.Err("rc-membrane: parameter named %q is invalid", p.N)
		}
	}
	if o.Ec < 1e-9 || o.Fc < 1e-9 || o.Fct < 1e-9 {
		return chk.Err("rc-membrane: Ec, fc and fct must be positive")
	}
	o.εcr = o.Fct / o.Ec
	o.ε0 = -2.0 * o.Fc / o.Ec
	if o.Es > 0 {
		o.εy = o.Fy / o.Es
	}
	α := o.Ec / (1.0 - o.Nu*o.Nu)
	o.de = [][]float64{
		{α, α * o.Nu, 0},
		{α * o.Nu, α, 0},
		{0, 0, α * (1.0 - o.Nu) / 2.0},
	}
	o.dp = la.MatAlloc(3, 3)
	o.tt = la.MatAlloc(3, 3)
	o.dc = la.MatAlloc(3, 3)
	o.ds = la.MatAlloc(3, 3)
	o.sc = make([]float64, 3)
	o.ss = make([]float64, 3)
	return
}

// GetPrms returns an example set of parameters [MPa]
func (o RCMembrane) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Ec", V: 30000},
		&fun.Prm{N: "fc", V: 30},
		&fun.Prm{N: "fct", V: 2.0},
		&fun.Prm{N: "nu", V: 0.2},
		&fun.Prm{N: "Es", V: 210000},
		&fun.Prm{N: "fy", V: 500},
		&fun.Prm{N: "rox", V: 0.01},
		&fun.Prm{N: "roy", V: 0.01},
	}
}

// Gc returns the uncracked concrete shear modulus
func (o *RCMembrane) Gc() float64 {
	return o.Ec / (2.0 * (1.0 + o.Nu))
}

// Calculate updates the state and returns concrete and reinforcement
// stresses with their secant stiffness matrices. The returned vectors and
// matrices are scratchpads overwritten by the next call.
func (o *RCMembrane) Calculate(s *MembraneState, ε []float64) (σc, σs []float64, Dc, Ds [][]float64, err error) {
	if len(ε) != 3 {
		err = chk.Err("rc-membrane: strain vector must have 3 components; got %d", len(ε))
		return
	}
	εx := ChopStrain(ε[0])
	εy := ChopStrain(ε[1])
	γ := ChopStrain(ε[2])

	// principal strains
	avg := (εx + εy) / 2.0
	rad := math.Sqrt((εx-εy)*(εx-εy)/4.0 + γ*γ/4.0)
	ε1 := avg + rad
	ε2 := avg - rad
	θ := 0.5 * math.Atan2(γ, εx-εy)

	// state transition. monotone: the flag is never cleared
	if ε1 > o.εcr {
		s.Cracked = true
	}

	// concrete
	σc = o.sc
	if !s.Cracked {
		Dc = o.de
		la.MatVecMul(σc, 1, Dc, ε)
	} else {
		e1 := o.secantTension(ε1)
		e2 := o.secantCompression(ε2)
		gs := 0.0
		if e1+e2 > 1e-12 {
			gs = e1 * e2 / (e1 + e2)
		}
		la.MatFill(o.dp, 0)
		o.dp[0][0] = e1
		o.dp[1][1] = e2
		o.dp[2][2] = gs

		// rotate secant stiffness to the xy frame: Dc = tr(T)⋅Dp⋅T
		c, sn := math.Cos(θ), math.Sin(θ)
		o.tt[0][0], o.tt[0][1], o.tt[0][2] = c*c, sn*sn, c*sn
		o.tt[1][0], o.tt[1][1], o.tt[1][2] = sn*sn, c*c, -c*sn
		o.tt[2][0], o.tt[2][1], o.tt[2][2] = -2.0*c*sn, 2.0*c*sn, c*c-sn*sn
		Dc = o.dc
		la.MatTrMul3(Dc, 1, o.tt, o.dp, o.tt) // Dc := tr(T)⋅Dp⋅T
		la.MatVecMul(σc, 1, Dc, ε)
	}

	// reinforcement
	σs = o.ss
	Ds = o.ds
	σs[0], Ds[0][0] = o.steel(s, o.Rox, εx)
	σs[1], Ds[1][1] = o.steel(s, o.Roy, εy)

	copy(s.Eps, ε)
	return σc, σs, Dc, Ds, nil
}

// secantTension returns the secant modulus along a tensile principal
// direction, with softening beyond the cracking strain
func (o *RCMembrane) secantTension(ε float64) float64 {
	if ε <= 0 {
		return o.secantCompression(ε)
	}
	if ε <= o.εcr {
		return o.Ec
	}
	σ := o.Fct * (1.0 + math.Sqrt(500.0*o.εcr)) / (1.0 + math.Sqrt(500.0*ε))
	return σ / ε
}

// secantCompression returns the secant modulus along a compressive
// principal direction following the parabolic branch
func (o *RCMembrane) secantCompression(ε float64) float64 {
	if ε >= 0 {
		return o.Ec
	}
	η := ε / o.ε0
	if η > 2.0 { // crushed
		return 0
	}
	σ := -o.Fc * (2.0*η - η*η)
	return σ / ε
}

// steel returns the smeared reinforcement stress and secant stiffness along
// one direction, raising the yielding flag when the strain passes εy
func (o *RCMembrane) steel(s *MembraneState, ρ, ε float64) (σ, d float64) {
	if ρ < 1e-12 || o.Es < 1e-9 {
		return 0, 0
	}
	if math.Abs(ε) >= o.εy {
		s.Yielding = true
		if ε > 0 {
			return ρ * o.Fy, 0
		}
		return -ρ * o.Fy, 0
	}
	return ρ * o.Es * ε, ρ * o.Es
}
