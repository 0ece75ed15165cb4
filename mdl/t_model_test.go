// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/krismaclennan/simpeg/msh"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. background and spheres")

	m := msh.NewMesh(
		[]msh.Expansion{{W: 10, Num: 10, Fac: 0}},
		[]msh.Expansion{{W: 10, Num: 10, Fac: 0}},
		[]msh.Expansion{{W: 10, Num: 10, Fac: 0}},
		"CCN",
	)

	// one sphere in the middle of the domain
	sph := &Sphere{C: []float64{0, 0, -50}, R: 20, Sig: 1e-1}
	sig := Conductivity(m, 1e-2, []*Sphere{sph})
	chk.IntAssert(len(sig), m.NumCells())

	// cells at the sphere centre take the sphere value
	chk.Float64(tst, "sig inside", 1e-15, sig[m.ClosestCell([]float64{0, 0, -50})], 1e-1)
	chk.Float64(tst, "sig outside", 1e-15, sig[m.ClosestCell([]float64{45, 45, -5})], 1e-2)

	// a sphere of radius 20 on a 10 m grid holds a couple dozen cells
	nin := 0
	for _, s := range sig {
		if s == 1e-1 {
			nin++
		}
	}
	io.Pforan("cells inside = %v\n", nin)
	if nin < 8 || nin > 64 {
		tst.Errorf("wrong number of cells inside the sphere: %d", nin)
		return
	}

	// later spheres override earlier ones
	sph2 := &Sphere{C: []float64{0, 0, -50}, R: 10, Sig: 1e-3}
	sig = Conductivity(m, 1e-2, []*Sphere{sph, sph2})
	chk.Float64(tst, "sig override", 1e-15, sig[m.ClosestCell([]float64{0, 0, -50})], 1e-3)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. sphere membership")

	sph := &Sphere{C: []float64{10, -10, -30}, R: 5, Sig: 1}
	if !sph.Contains(10, -10, -30) {
		tst.Errorf("centre must be inside the sphere")
		return
	}
	if !sph.Contains(10, -10, -25) {
		tst.Errorf("boundary must be inside the sphere")
		return
	}
	if sph.Contains(10, -10, -24.999) {
		tst.Errorf("points beyond the radius must be outside the sphere")
		return
	}
}
