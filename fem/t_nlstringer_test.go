// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/andrefmello91/SPMElements-sub000/geo"
)

func Test_nlstr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nlstr01. zero load keeps the elastic stiffness")

	mdl := rcbar(tst)
	n1, n2, n3 := nodes3(tst, geo.Point{0, 0}, geo.Point{1000, 0}, geo.Point{2000, 0})
	lin, err := NewStringer(n1, n2, n3, 150, 100, mdl, Elastic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	e, err := NewStringer(n1, n2, n3, 150, 100, mdl, Nonlinear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := e.(*NLStringer)

	o.UpdateDisplacements()
	err = o.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "fi zero", 1e-17, o.Forces(), []float64{0, 0, 0, 0, 0, 0})

	// the flexibility inverse reduces to the quadratic-field stiffness
	err = o.UpdateStiffness()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "K", 10, o.Stiffness(), lin.Stiffness())
	chk.IntAssert(o.NbkFallbacks, 0)
}

func Test_nlstr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nlstr02. uncracked response matches the elastic element")

	mdl := rcbar(tst)
	n1, n2, n3 := nodes3(tst, geo.Point{0, 0}, geo.Point{1000, 0}, geo.Point{2000, 0})
	lin, err := NewStringer(n1, n2, n3, 150, 100, mdl, Elastic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	e, err := NewStringer(n1, n2, n3, 150, 100, mdl, Nonlinear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := e.(*NLStringer)

	// uniform stretch below the cracking strain: 2.5e-5 < 2/30000
	δ := 0.05
	n2.U[0] = δ / 2.0
	n3.U[0] = δ
	lin.UpdateDisplacements()
	err = lin.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o.UpdateDisplacements()
	err = o.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("lin fi = %v\n", lin.Forces())
	io.Pforan("nl  fi = %v\n", o.Forces())
	chk.Vector(tst, "fi", 0.05, o.Forces(), lin.Forces())
	chk.Scalar(tst, "E1 target", 1e-15, o.E1, δ/2.0)
	chk.Scalar(tst, "E3 target", 1e-15, o.E3, δ/2.0)
	for k := 0; k < 4; k++ {
		if o.Ips[k].Cracked() {
			tst.Errorf("integration point %d must not crack below eps_cr\n", k)
			return
		}
	}

	// trial state becomes the committed state
	o.Commit()
	chk.Scalar(tst, "committed N1", 1e-17, o.cN1, o.N1)
	chk.Scalar(tst, "committed E3", 1e-17, o.cE3, o.E3)
}

func Test_nlstr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nlstr03. plastic cutoff bounds the generalized stresses")

	mdl := rcbar(tst)
	n1, n2, n3 := nodes3(tst, geo.Point{0, 0}, geo.Point{1000, 0}, geo.Point{2000, 0})
	e, err := NewStringer(n1, n2, n3, 150, 100, mdl, Nonlinear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := e.(*NLStringer)

	// one elastic predictor step shoots far beyond the yield force
	o.NumStrainSteps = 1
	o.MaxIt = 1
	δ := 5.0 * mdl.YieldStrain() * 2000.0
	n2.U[0] = δ / 2.0
	n3.U[0] = δ
	o.UpdateDisplacements()
	err = o.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ny := mdl.YieldForce()
	chk.Scalar(tst, "N1 capped", 1e-12, o.N1, ny)
	chk.Scalar(tst, "N3 capped", 1e-12, o.N3, ny)
	chk.Vector(tst, "fi capped", 1e-9, o.Forces(), []float64{-ny, 0, 0, 0, ny, 0})
}

func Test_nlstr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nlstr04. unreachable forces fall back to the last strain")

	mdl := rcbar(tst)
	n1, n2, n3 := nodes3(tst, geo.Point{0, 0}, geo.Point{1000, 0}, geo.Point{2000, 0})
	e, err := NewStringer(n1, n2, n3, 150, 100, mdl, Nonlinear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := e.(*NLStringer)

	// no strain produces twice the yield force in tension
	ip := o.Ips[0]
	ip.LastGenStrain = 0.123
	ε := o.strainFromForce(ip, 2.0*mdl.YieldForce())
	chk.Scalar(tst, "fallback strain", 1e-17, ε, 0.123)
	chk.IntAssert(o.NbkFallbacks, 1)

	// reachable forces do not touch the counter
	ε = o.strainFromForce(o.Ips[1], 0.5*mdl.CrackingForce())
	chk.Scalar(tst, "elastic inversion", 1e-12, ε, 0.5*mdl.CrackingForce()/mdl.Stiffness())
	chk.IntAssert(o.NbkFallbacks, 1)
}

func Test_nlstr05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nlstr05. cracking flags survive unloading")

	mdl := rcbar(tst)
	n1, n2, n3 := nodes3(tst, geo.Point{0, 0}, geo.Point{1000, 0}, geo.Point{2000, 0})
	e, err := NewStringer(n1, n2, n3, 150, 100, mdl, Nonlinear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o := e.(*NLStringer)

	// uniform strain 5e-4: cracked, below yield
	δ := 1.0
	n2.U[0] = δ / 2.0
	n3.U[0] = δ
	o.UpdateDisplacements()
	err = o.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for k := 0; k < 4; k++ {
		if !o.Ips[k].Cracked() {
			tst.Errorf("integration point %d must crack at 5e-4\n", k)
			return
		}
		if o.Ips[k].Yielding() {
			tst.Errorf("integration point %d must not yield at 5e-4\n", k)
			return
		}
	}

	// unload: flags stay raised, the trial state can be discarded
	n2.U[0] = 0
	n3.U[0] = 0
	o.UpdateDisplacements()
	err = o.CalculateForces()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for k := 0; k < 4; k++ {
		if !o.Ips[k].Cracked() {
			tst.Errorf("integration point %d must stay cracked after unloading\n", k)
			return
		}
	}
	o.Restore()
	chk.Scalar(tst, "restored N1", 1e-17, o.N1, 0)
	chk.Scalar(tst, "restored E3", 1e-17, o.E3, 0)
}
