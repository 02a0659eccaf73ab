// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/andrefmello91/SPMElements-sub000/geo"
	"github.com/andrefmello91/SPMElements-sub000/mcon"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rcbar returns an initialised reference uniaxial model
func rcbar(tst *testing.T) mcon.Uniaxial {
	mdl := mcon.NewUniaxial("rc-bar")
	if mdl == nil {
		tst.Fatalf("cannot allocate rc-bar\n")
	}
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Fatalf("cannot initialise rc-bar: %v\n", err)
	}
	return mdl
}

// elmem returns an initialised reference membrane model
func elmem(tst *testing.T) mcon.Membrane {
	mdl := mcon.NewMembrane("elastic-membrane")
	if mdl == nil {
		tst.Fatalf("cannot allocate elastic-membrane\n")
	}
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Fatalf("cannot initialise elastic-membrane: %v\n", err)
	}
	return mdl
}

// nodes3 returns three numbered nodes for stringer tests
func nodes3(tst *testing.T, p1, p2, p3 geo.Point) (n1, n2, n3 *Node) {
	var err error
	n1, err = NewNode(1, p1)
	if err != nil {
		tst.Fatalf("cannot allocate node: %v\n", err)
	}
	n2, err = NewNode(2, p2)
	if err != nil {
		tst.Fatalf("cannot allocate node: %v\n", err)
	}
	n3, err = NewNode(3, p3)
	if err != nil {
		tst.Fatalf("cannot allocate node: %v\n", err)
	}
	return
}

// sqpanelNodes returns four numbered nodes at the edge centres of the
// square panel with corners (0,0) and (400,400)
func sqpanelNodes(tst *testing.T) (nods [4]*Node) {
	pts := [4]geo.Point{{200, 0}, {400, 200}, {200, 400}, {0, 200}}
	for i := 0; i < 4; i++ {
		nod, err := NewNode(i+1, pts[i])
		if err != nil {
			tst.Fatalf("cannot allocate node: %v\n", err)
		}
		nods[i] = nod
	}
	return
}
