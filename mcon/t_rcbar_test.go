// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcon

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_rcbar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcbar01. thresholds and branch continuity")

	mdl := NewUniaxial("rc-bar")
	if mdl == nil {
		tst.Errorf("cannot allocate rc-bar\n")
		return
	}
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// Ec⋅Ac + Es⋅As = 30000⋅10000 + 210000⋅300
	chk.Scalar(tst, "EA", 1e-8, mdl.Stiffness(), 3.63e8)
	chk.Scalar(tst, "eps_cr", 1e-17, mdl.CrackingStrain(), 2.0/30000.0)
	chk.Scalar(tst, "eps_y", 1e-17, mdl.YieldStrain(), 500.0/210000.0)
	chk.Scalar(tst, "ncr", 1e-7, mdl.CrackingForce(), 24200)
	chk.Scalar(tst, "nc", 1e-6, mdl.MaxCompressiveForce(), -426000)

	// thresholds are consistent with the relation itself
	εcr, εy := mdl.CrackingStrain(), mdl.YieldStrain()
	ncr, _ := mdl.Calculate(εcr)
	ny, _ := mdl.Calculate(εy)
	chk.Scalar(tst, "N(eps_cr)", 1e-9, ncr, mdl.CrackingForce())
	chk.Scalar(tst, "N(eps_y)", 1e-9, ny, mdl.YieldForce())

	// continuity across the cracking strain
	Nbelow, _ := mdl.Calculate(εcr * (1.0 - 1e-9))
	Nabove, _ := mdl.Calculate(εcr * (1.0 + 1e-9))
	io.Pforan("N below/above cracking = %v %v\n", Nbelow, Nabove)
	chk.Scalar(tst, "continuity at cracking", 1e-2, Nbelow, Nabove)

	// yield plateau: the force never exceeds ny in tension
	Nplat, Dplat := mdl.Calculate(2.0 * εy)
	if Nplat > mdl.YieldForce() {
		tst.Errorf("plateau force %g exceeds ny = %g\n", Nplat, mdl.YieldForce())
		return
	}
	if Dplat > 0 {
		tst.Errorf("plateau tangent %g must not be positive\n", Dplat)
		return
	}

	// crushing: concrete exhausted, yielded steel only
	Ncrush, Dcrush := mdl.Calculate(2.5 * (-2.0 * 30.0 / 30000.0))
	chk.Scalar(tst, "N crushed", 1e-12, Ncrush, -500.0*300.0)
	chk.Scalar(tst, "D crushed", 1e-12, Dcrush, 0)
}

func Test_rcbar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcbar02. tangent vs numerical differentiation")

	mdl := NewUniaxial("rc-bar")
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// one strain per smooth branch
	for _, ε := range []float64{3e-5, 5e-4, 5e-3, -1e-3} {
		_, D := mdl.Calculate(ε)
		h := 1e-7
		Na, _ := mdl.Calculate(ε + h)
		Nb, _ := mdl.Calculate(ε - h)
		Dnum := (Na - Nb) / (2.0 * h)
		io.Pforan("eps=%10g  D=%15g  Dnum=%15g\n", ε, D, Dnum)
		chk.Scalar(tst, io.Sf("D(%g)", ε), 1e-3*mdl.Stiffness(), D, Dnum)
	}

	// the force never decreases between cracking and yielding
	εs := utl.LinSpace(mdl.CrackingStrain(), mdl.YieldStrain(), 21)
	prev, _ := mdl.Calculate(εs[0])
	for _, ε := range εs[1:] {
		N, _ := mdl.Calculate(ε)
		if N < prev {
			tst.Errorf("force decreased before yielding: N(%g) = %g < %g\n", ε, N, prev)
			return
		}
		prev = N
	}
}

func Test_rcbar03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcbar03. unreinforced bars")

	mdl := NewUniaxial("rc-bar")
	err := mdl.Init([]*fun.Prm{
		&fun.Prm{N: "Ec", V: 30000},
		&fun.Prm{N: "fc", V: 30},
		&fun.Prm{N: "fct", V: 2.0},
		&fun.Prm{N: "Ac", V: 10000},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// no capacity beyond cracking
	chk.Scalar(tst, "eps_y", 1e-17, mdl.YieldStrain(), mdl.CrackingStrain())

	// tension stiffening decays below the cracking force
	εcr := mdl.CrackingStrain()
	N, _ := mdl.Calculate(2.0 * εcr)
	io.Pforan("N(2 eps_cr) = %v (ncr = %v)\n", N, mdl.CrackingForce())
	if N >= mdl.CrackingForce() {
		tst.Errorf("post-cracking force %g must decay below ncr = %g\n", N, mdl.CrackingForce())
		return
	}

	// crushed plain concrete carries nothing
	Ncrush, _ := mdl.Calculate(-0.006)
	chk.Scalar(tst, "N crushed", 1e-12, Ncrush, 0)
}

func Test_rcbar04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rcbar04. registry and parameter validation")

	if NewUniaxial("unknown-model") != nil {
		tst.Errorf("unknown model name must return nil\n")
		return
	}

	mdl := NewUniaxial("rc-bar")
	err := mdl.Init([]*fun.Prm{&fun.Prm{N: "badprm", V: 1}})
	if err == nil {
		tst.Errorf("invalid parameter name must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "Ec", V: 30000},
		&fun.Prm{N: "fc", V: 30},
		&fun.Prm{N: "fct", V: 2.0},
		&fun.Prm{N: "Ac", V: 10000},
		&fun.Prm{N: "As", V: 300},
	})
	if err == nil {
		tst.Errorf("reinforced bar without Es and fy must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
