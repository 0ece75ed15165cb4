// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package survey

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Data pairs a survey geometry with the corresponding observed (or
// predicted) potentials, one value per transmitter-receiver combination,
// ordered source by source.
type Data struct {
	Srv  *Survey   // survey geometry
	Dobs []float64 // observed/predicted potentials [NumData]
}

// NewData creates a Data structure after checking lengths
func NewData(srv *Survey, dobs []float64) (o *Data) {
	if len(dobs) != srv.NumData() {
		chk.Panic("number of observations must match survey size. len(dobs)=%d ndata=%d", len(dobs), srv.NumData())
	}
	return &Data{Srv: srv, Dobs: dobs}
}

// GeomFactor returns the half-space geometric factor of one
// transmitter-receiver pair. Nil (remote) electrodes drop their terms.
func GeomFactor(src *Src, rx *Rx) (g float64) {
	g = 1.0 / dist(src.A, rx.M)
	if src.B != nil {
		g -= 1.0 / dist(src.B, rx.M)
	}
	if rx.N != nil {
		g -= 1.0 / dist(src.A, rx.N)
		if src.B != nil {
			g += 1.0 / dist(src.B, rx.N)
		}
	}
	return g / (2.0 * math.Pi)
}

// Values converts the stored potentials to the requested unit type:
// "volt" returns the potentials unchanged, "appResistivity" divides by the
// geometric factor (unit current) and "appConductivity" inverts that.
func (o *Data) Values(unit string) (vals []float64) {
	if err := CheckUnit(unit); err != nil {
		chk.Panic("%v", err)
	}
	vals = make([]float64, len(o.Dobs))
	iv := 0
	for _, src := range o.Srv.Srcs {
		for _, rx := range src.Rx {
			v := o.Dobs[iv]
			switch unit {
			case UnitVolt:
				vals[iv] = v
			case UnitAppRes:
				vals[iv] = v / GeomFactor(src, rx)
			case UnitAppCond:
				vals[iv] = GeomFactor(src, rx) / v
			}
			iv++
		}
	}
	return
}

// PseudoCoords returns the pseudo-section coordinates of every
// transmitter-receiver combination: the midpoint between transmitter and
// receiver centres along the first axis and a negative pseudo-depth equal
// to half their separation.
func (o *Data) PseudoCoords() (xs, zs []float64) {
	nd := o.Srv.NumData()
	xs = make([]float64, nd)
	zs = make([]float64, nd)
	iv := 0
	for _, src := range o.Srv.Srcs {
		tx := centre(src.A, src.B)
		for _, rx := range src.Rx {
			rc := centre(rx.M, rx.N)
			xs[iv] = (tx + rc) / 2.0
			zs[iv] = -math.Abs(rc-tx) / 2.0
			iv++
		}
	}
	return
}

// centre returns the first-axis coordinate of the midpoint of a pair of
// electrodes; single (pole) electrodes are their own midpoint
func centre(a, b []float64) float64 {
	if b == nil {
		return a[0]
	}
	return (a[0] + b[0]) / 2.0
}
