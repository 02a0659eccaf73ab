// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"

	"github.com/andrefmello91/SPMElements-sub000/mcon"
)

// NLStringer represents a nonlinear 3-grip axial element. Per analysis
// call, the displacement increment is divided into strain sub-steps; in
// each sub-step the generalized stresses (N1,N3) are iterated against four
// normal forces sampled along the axis, each inverted to a strain through
// the material relation at its integration point. The generalized
// stiffness is the inverse of the 2×2 flexibility assembled from the same
// four samples.
type NLStringer struct {
	Stringer // elastic bookkeeping: grips, geometry, T, maps, scratchpad

	// integration points at x = 0, L/3, 2L/3, L
	Ips [4]*IntPoint

	// algorithm control
	NumStrainSteps int     // sub-steps per displacement increment
	MaxIt          int     // equilibrium iterations per sub-step
	Tol            float64 // tolerance on generalized strain residuals

	// trial generalized state
	N1, N3 float64 // generalized stresses
	E1, E3 float64 // generalized strains

	// committed generalized state
	cN1, cN3 float64
	cE1, cE3 float64

	// diagnostics
	NbkFallbacks int // material inversions recovered via the strain fallback

	// matrices
	F  [][]float64 // [2][2] flexibility
	Fi [][]float64 // [2][2] inverse of F
	K2 [][]float64 // [2][2] generalized stiffness
	bb [][]float64 // [2][3] local displacements → generalized strains

	// scratchpad
	εs [4]float64 // sampled strains
	fs [4]float64 // sampled flexibilities dε/dN
	x  []float64  // [1] root-find unknown

	// nonlinear solver for the strain-given-force inversion
	nls  num.NlSolver
	ntgt float64 // target force of the current inversion
}

// newNLStringer allocates the nonlinear variant; see NewStringer
func newNLStringer(n1, n2, n3 *Node, width, height float64, mdl mcon.Uniaxial) (o *NLStringer, err error) {
	lin, err := newStringer(n1, n2, n3, width, height, mdl)
	if err != nil {
		return nil, err
	}
	o = &NLStringer{Stringer: *lin}
	for k := 0; k < 4; k++ {
		o.Ips[k] = NewIntPoint(mdl.CrackingStrain(), mdl.YieldStrain())
	}
	o.NumStrainSteps = 5
	o.MaxIt = 20
	o.Tol = 1e-8
	o.F = la.MatAlloc(2, 2)
	o.Fi = la.MatAlloc(2, 2)
	o.K2 = la.MatAlloc(2, 2)
	o.bb = [][]float64{
		{-5.0 / 6.0, 4.0 / 6.0, 1.0 / 6.0},
		{-1.0 / 6.0, -4.0 / 6.0, 5.0 / 6.0},
	}
	o.x = make([]float64, 1)

	// initial (elastic) flexibility
	β := o.Geo.L / (6.0 * mdl.Stiffness())
	o.F[0][0], o.F[0][1] = 2.0*β, β
	o.F[1][0], o.F[1][1] = β, 2.0*β

	// nonlinear solver with numerical Jacobian
	useDn, numJ := true, true
	o.nls.Init(1, o.ffcn, nil, nil, useDn, numJ, map[string]float64{})
	o.nls.ChkConv = false
	return
}

// ffcn is the residual of the strain-given-force inversion
func (o *NLStringer) ffcn(fx, x []float64) error {
	N, _ := o.Mdl.Calculate(x[0])
	fx[0] = N - o.ntgt
	return nil
}

// strainFromForce inverts the material relation for the strain producing
// the normal force N. A failed or NaN solve falls back to the integration
// point's last converged strain and increments NbkFallbacks.
func (o *NLStringer) strainFromForce(ip *IntPoint, N float64) (ε float64) {
	N = mcon.ChopForce(N)
	if N == 0 {
		ip.LastGenStrain = 0
		return 0
	}

	// initial guess from the branch the force falls in
	ncr, ny := o.Mdl.CrackingForce(), o.Mdl.YieldForce()
	guess := N / o.Mdl.Stiffness()
	if N > ncr {
		εcr, εy := ip.CrackingStrain, ip.YieldStrain
		if ny > ncr {
			guess = εcr + (εy-εcr)*(N-ncr)/(ny-ncr)
		} else {
			guess = εcr
		}
	}

	// solve
	o.ntgt = N
	o.x[0] = guess
	err := o.nls.Solve(o.x, true)
	ε = o.x[0]
	ok := err == nil && !math.IsNaN(ε) && !math.IsInf(ε, 0)
	if ok {
		// verify the root; the solver may stop on a stationary point when
		// the force lies outside every branch of the relation
		Nchk, _ := o.Mdl.Calculate(ε)
		ok = math.Abs(Nchk-N) <= 1e-6*(1.0+math.Abs(N))
	}
	if !ok {
		o.NbkFallbacks++
		return ip.LastGenStrain
	}
	ε = mcon.ChopStrain(ε)
	ip.LastGenStrain = ε
	return
}

// flexAt returns the flexibility dε/dN at a sampled strain, derived by
// numerical differentiation of the material relation
func (o *NLStringer) flexAt(ε float64) float64 {
	h := 1e-8 + 1e-4*math.Abs(ε)
	d, err := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		N, _ := o.Mdl.Calculate(t)
		return N
	}, ε, h)
	EA := o.Mdl.Stiffness()
	if err != nil || d < 1e-8*EA {
		// yield plateau or softening: near-zero stiffness, large flexibility
		return 1e8 / EA
	}
	return 1.0 / d
}

// sample evaluates the four normal-force stations, filling the sampled
// strains and flexibilities, the flexibility matrix, and returning the
// computed generalized strains
func (o *NLStringer) sample() (g1, g3 float64) {
	ns := [4]float64{o.N1, (2.0*o.N1 + o.N3) / 3.0, (o.N1 + 2.0*o.N3) / 3.0, o.N3}
	for k := 0; k < 4; k++ {
		ε := o.strainFromForce(o.Ips[k], ns[k])
		o.εs[k] = ε
		o.fs[k] = o.flexAt(ε)
		o.Ips[k].UpdateFlags(ε)
	}
	L := o.Geo.L
	g1 = L / 8.0 * (o.εs[0] + 2.0*o.εs[1] + o.εs[2])
	g3 = L / 8.0 * (o.εs[1] + 2.0*o.εs[2] + o.εs[3])
	o.F[0][0] = L / 24.0 * (3.0*o.fs[0] + 4.0*o.fs[1] + o.fs[2])
	o.F[0][1] = L / 12.0 * (o.fs[1] + o.fs[2])
	o.F[1][0] = o.F[0][1]
	o.F[1][1] = L / 24.0 * (o.fs[1] + 4.0*o.fs[2] + 3.0*o.fs[3])
	return
}

// CalculateForces runs the incremental-iterative update for the current
// grip displacements and computes the global force vector. The committed
// state is left untouched; call Commit to accept the trial state.
func (o *NLStringer) CalculateForces() (err error) {

	// target generalized strains from the local displacements
	o.E1 = (-5.0*o.ul[0] + 4.0*o.ul[1] + o.ul[2]) / 6.0
	o.E3 = (-o.ul[0] - 4.0*o.ul[1] + 5.0*o.ul[2]) / 6.0

	// sub-step increments from the committed state
	nss := o.NumStrainSteps
	Δ1 := (o.E1 - o.cE1) / float64(nss)
	Δ3 := (o.E3 - o.cE3) / float64(nss)

	// start the trial from the committed state
	o.N1, o.N3 = o.cN1, o.cN3
	t1, t3 := o.cE1, o.cE3

	// sub-steps
	for n := 0; n < nss; n++ {
		t1 += Δ1
		t3 += Δ3
		for it := 0; it < o.MaxIt; it++ {
			g1, g3 := o.sample()
			r1 := t1 - g1
			r3 := t3 - g3
			if math.Abs(r1) < o.Tol && math.Abs(r3) < o.Tol {
				break
			}
			err = la.MatInvG(o.Fi, o.F, 1e-10)
			if err != nil {
				return chk.Err("singular stiffness: stringer flexibility is not invertible: %v", err)
			}
			o.N1 += o.Fi[0][0]*r1 + o.Fi[0][1]*r3
			o.N3 += o.Fi[1][0]*r1 + o.Fi[1][1]*r3
		}
	}

	// plastic cutoff
	nc, ny := o.Mdl.MaxCompressiveForce(), o.Mdl.YieldForce()
	o.N1 = clampForce(o.N1, nc, ny)
	o.N3 = clampForce(o.N3, nc, ny)

	// grip forces: fl := tr(bb)⋅(N1,N3)
	for i := 0; i < 3; i++ {
		o.fl[i] = o.bb[0][i]*o.N1 + o.bb[1][i]*o.N3
	}
	la.VecFill(o.fi, 0)
	la.MatTrVecMulAdd(o.fi, 1.0, o.T, o.fl) // fi := tr(T)⋅fl
	for i := range o.fi {
		o.fi[i] = mcon.ChopForce(o.fi[i])
	}
	return
}

// UpdateStiffness rebuilds the stiffness from the current flexibility
func (o *NLStringer) UpdateStiffness() (err error) {
	err = la.MatInvG(o.K2, o.F, 1e-10)
	if err != nil {
		return chk.Err("singular stiffness: stringer flexibility is not invertible: %v", err)
	}
	la.MatTrMul3(o.Kl, 1, o.bb, o.K2, o.bb) // Kl := tr(bb)⋅K2⋅bb
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T)    // K  := tr(T)⋅Kl⋅T
	return
}

// Commit accepts the trial generalized state as converged
func (o *NLStringer) Commit() {
	o.cN1, o.cN3 = o.N1, o.N3
	o.cE1, o.cE3 = o.E1, o.E3
}

// Restore discards the trial generalized state
func (o *NLStringer) Restore() {
	o.N1, o.N3 = o.cN1, o.cN3
	o.E1, o.E3 = o.cE1, o.cE3
}

// clampForce applies the plastic cutoff to a generalized stress
func clampForce(n, nc, ny float64) float64 {
	if n > ny {
		return ny
	}
	if n < nc {
		return nc
	}
	return n
}
