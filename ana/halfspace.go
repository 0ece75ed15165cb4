// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verifications
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/krismaclennan/simpeg/survey"
)

// HalfSpace holds data for the potential field of surface current
// electrodes over a homogeneous half-space of conductivity Sig
type HalfSpace struct {
	Sig float64 // conductivity [S/m]
	Cur float64 // injected current [A]
}

// PointPotential returns the potential at p of a single current electrode
// at e, both on the surface of the half-space:
//
//   phi = I / (2 pi sig r)
//
func (o HalfSpace) PointPotential(e, p []float64) float64 {
	r := 0.0
	for i := 0; i < len(e); i++ {
		r += (e[i] - p[i]) * (e[i] - p[i])
	}
	r = math.Sqrt(r)
	if r <= 0 {
		chk.Panic("cannot compute the potential at the electrode location %v", e)
	}
	return o.Cur / (2.0 * math.Pi * o.Sig * r)
}

// SrcPotential returns the potential at p of one transmitter; pole
// sources have their return electrode at infinity
func (o HalfSpace) SrcPotential(src *survey.Src, p []float64) (v float64) {
	v = o.PointPotential(src.A, p)
	if src.B != nil {
		v -= o.PointPotential(src.B, p)
	}
	return
}

// Predict returns the potential differences measured by every
// transmitter-receiver combination of the survey, in survey order
func (o HalfSpace) Predict(srv *survey.Survey) (dobs []float64) {
	dobs = make([]float64, 0, srv.NumData())
	for _, src := range srv.Srcs {
		for _, rx := range src.Rx {
			v := o.SrcPotential(src, rx.M)
			if rx.N != nil {
				v -= o.SrcPotential(src, rx.N)
			}
			dobs = append(dobs, v)
		}
	}
	return
}
