// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// StateFlag describes the irreversible state of an integration point.
// Transitions only move forward: Uncracked → CrackedElastic →
// CrackedYielding.
type StateFlag int

// integration point states
const (
	Uncracked       StateFlag = iota // no cracking yet
	CrackedElastic                   // cracked, reinforcement elastic
	CrackedYielding                  // cracked, reinforcement yielding
)

// IntPoint holds the state of one integration point of a nonlinear
// stringer: the material thresholds fixed at construction, the monotone
// state flag, and the last successfully inverted strain kept as a fallback
// for non-convergent material inversions.
type IntPoint struct {

	// thresholds. fixed at construction
	CrackingStrain float64 // strain at concrete cracking
	YieldStrain    float64 // strain at reinforcement yielding

	// state
	Flag          StateFlag // monotone state flag
	LastGenStrain float64   // fallback cache of the last converged strain
}

// NewIntPoint returns a new integration point in the uncracked state
func NewIntPoint(εcr, εy float64) *IntPoint {
	return &IntPoint{CrackingStrain: εcr, YieldStrain: εy}
}

// Raise moves the state flag forward. Attempts to move backward are
// ignored, keeping the flag monotone for the life of the element.
func (o *IntPoint) Raise(f StateFlag) {
	if f > o.Flag {
		o.Flag = f
	}
}

// UpdateFlags raises the state flag according to a converged strain
func (o *IntPoint) UpdateFlags(ε float64) {
	if ε > o.CrackingStrain {
		o.Raise(CrackedElastic)
	}
	if ε >= o.YieldStrain {
		o.Raise(CrackedYielding)
	}
}

// Cracked tells whether the point has cracked
func (o *IntPoint) Cracked() bool { return o.Flag >= CrackedElastic }

// Yielding tells whether the reinforcement is yielding
func (o *IntPoint) Yielding() bool { return o.Flag >= CrackedYielding }
