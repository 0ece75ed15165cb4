// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/krismaclennan/simpeg/survey"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_halfspace01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace01. point electrode potential")

	hs := HalfSpace{Sig: 0.01, Cur: 1}
	e := []float64{0, 0, 0}
	p := []float64{50, 0, 0}
	chk.Float64(tst, "phi", 1e-14, hs.PointPotential(e, p), 1.0/(2.0*math.Pi*0.01*50.0))

	// potential decays with distance
	p2 := []float64{100, 0, 0}
	if hs.PointPotential(e, p2) >= hs.PointPotential(e, p) {
		tst.Errorf("potential must decay with distance")
		return
	}
}

func Test_halfspace02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace02. apparent resistivity of a homogeneous half-space")

	// over a homogeneous half-space, the apparent resistivity recovered
	// through the geometric factor equals the true resistivity for every
	// electrode configuration
	hs := HalfSpace{Sig: 0.02, Cur: 1}
	for _, stype := range []string{survey.DipoleDipole, survey.PoleDipole, survey.PolePole} {
		srv, err := survey.Gen([]float64{0, 0, 0}, []float64{300, 0, 0}, stype, 30, 30, 5)
		if err != nil {
			tst.Errorf("Gen failed:\n%v", err)
			return
		}
		dat := survey.NewData(srv, hs.Predict(srv))
		for i, rho := range dat.Values(survey.UnitAppRes) {
			chk.Float64(tst, io.Sf("%s rho %d", stype, i), 1e-11, rho, 1.0/hs.Sig)
		}
		for i, cnd := range dat.Values(survey.UnitAppCond) {
			chk.Float64(tst, io.Sf("%s cond %d", stype, i), 1e-13, cnd, hs.Sig)
		}
	}
}
