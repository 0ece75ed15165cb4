// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package survey implements DC resistivity survey geometries along a line
// of equally spaced electrode stations
package survey

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// survey types
const (
	DipoleDipole = "dipole-dipole"
	PoleDipole   = "pole-dipole"
	PolePole     = "pole-pole"
	Gradient     = "gradient"
)

// unit types
const (
	UnitAppRes  = "appResistivity"
	UnitAppCond = "appConductivity"
	UnitVolt    = "volt"
)

// Rx holds one potential measurement: electrodes M and N.
// N is nil for pole receivers (remote electrode).
type Rx struct {
	M []float64 // potential electrode M
	N []float64 // potential electrode N; nil for pole receivers
}

// Src holds one current injection: electrodes A and B and the receivers
// measured while this source is active. B is nil for pole sources.
type Src struct {
	A  []float64 // current electrode A
	B  []float64 // current electrode B; nil for pole sources
	Rx []*Rx     // receivers of this source
}

// Survey holds the complete electrode geometry of one line
type Survey struct {
	Type string    // survey type
	Srcs []*Src    // sources with their receivers
	End0 []float64 // first endpoint of the line
	End1 []float64 // second endpoint of the line
	Dirx float64   // x component of the line direction (unit vector)
	Diry float64   // y component of the line direction (unit vector)
	Len  float64   // line length
}

// CheckType validates the survey type accepted by forward runs.
// Note: "gradient" geometries can be generated but are not accepted here.
func CheckType(stype string) error {
	switch stype {
	case DipoleDipole, PoleDipole, PolePole:
		return nil
	}
	return chk.Err("survey type must be 'dipole-dipole', 'pole-dipole', 'dipole-pole' or 'pole-pole'. %q is invalid", stype)
}

// CheckUnit validates the measurement unit type
func CheckUnit(unit string) error {
	switch unit {
	case UnitAppRes, UnitAppCond, UnitVolt:
		return nil
	}
	return chk.Err("unit type must be 'appResistivity', 'appConductivity' or 'volt'. %q is invalid", unit)
}

// Gen generates all transmitter-receiver combinations along the line from
// end0 to end1 (both with 3 coordinates; the z values give the surface).
//  Input:
//   stype -- survey type: dipole-dipole, pole-dipole, pole-pole or gradient
//   a     -- electrode station spacing
//   b     -- receiver dipole length (must be a multiple of a)
//   n     -- maximum number of receiver separations per source
func Gen(end0, end1 []float64, stype string, a, b float64, n int) (o *Survey, err error) {
	switch stype {
	case DipoleDipole, PoleDipole, PolePole, Gradient:
	default:
		return nil, chk.Err("cannot generate survey with type %q", stype)
	}
	if len(end0) != 3 || len(end1) != 3 {
		return nil, chk.Err("line endpoints must have 3 coordinates. end0=%v end1=%v", end0, end1)
	}
	if a <= 0 || n < 1 {
		return nil, chk.Err("station spacing and number of separations must be positive. a=%g n=%d", a, n)
	}

	// stations along the line
	o = new(Survey)
	o.Type = stype
	o.End0, o.End1 = end0, end1
	o.Len = math.Sqrt(sq(end1[0]-end0[0]) + sq(end1[1]-end0[1]))
	if o.Len <= 0 {
		return nil, chk.Err("line endpoints must not coincide. end0=%v end1=%v", end0, end1)
	}
	o.Dirx = (end1[0] - end0[0]) / o.Len
	o.Diry = (end1[1] - end0[1]) / o.Len
	nstn := int(math.Floor(o.Len/a)) + 1
	stns := make([][]float64, nstn)
	for k := 0; k < nstn; k++ {
		s := float64(k) * a
		stns[k] = []float64{end0[0] + s*o.Dirx, end0[1] + s*o.Diry, end0[2]}
	}

	// receiver dipole length in stations
	mlen := 1
	if b > a {
		mlen = int(math.Floor(b/a + 0.5))
	}

	// gradient: one source spanning the line, receivers inside
	if stype == Gradient {
		src := &Src{A: stns[0], B: stns[nstn-1]}
		for j := 1; j+mlen < nstn-1; j++ {
			src.Rx = append(src.Rx, &Rx{M: stns[j], N: stns[j+mlen]})
		}
		if len(src.Rx) < 1 {
			return nil, chk.Err("line is too short for a gradient survey: %d stations", nstn)
		}
		o.Srcs = append(o.Srcs, src)
		return
	}

	// span of the source electrodes in stations
	span := 1
	if stype == PoleDipole || stype == PolePole {
		span = 0
	}

	// all sources with up to n receiver separations each
	for ii := 0; ii+span < nstn; ii++ {
		src := &Src{A: stns[ii]}
		if span > 0 {
			src.B = stns[ii+span]
		}
		for j := 1; j <= n; j++ {
			m := ii + span + j
			if stype == PolePole {
				if m >= nstn {
					break
				}
				src.Rx = append(src.Rx, &Rx{M: stns[m]})
				continue
			}
			if m+mlen >= nstn {
				break
			}
			src.Rx = append(src.Rx, &Rx{M: stns[m], N: stns[m+mlen]})
		}
		if len(src.Rx) > 0 {
			o.Srcs = append(o.Srcs, src)
		}
	}
	if len(o.Srcs) < 1 {
		return nil, chk.Err("line is too short for a %s survey: %d stations", stype, nstn)
	}
	return
}

// NumData returns the total number of transmitter-receiver combinations
func (o *Survey) NumData() (n int) {
	for _, src := range o.Srcs {
		n += len(src.Rx)
	}
	return
}

// To2D projects all electrode locations onto the line, replacing each
// location with {distance-along-line, z}. The result is a new survey;
// the original one is not modified.
func (o *Survey) To2D() (res *Survey) {
	res = &Survey{
		Type: o.Type,
		End0: []float64{0, o.End0[2]},
		End1: []float64{o.Len, o.End1[2]},
		Dirx: 1,
		Len:  o.Len,
	}
	for _, src := range o.Srcs {
		s := &Src{A: o.proj(src.A), B: o.proj(src.B)}
		for _, rx := range src.Rx {
			s.Rx = append(s.Rx, &Rx{M: o.proj(rx.M), N: o.proj(rx.N)})
		}
		res.Srcs = append(res.Srcs, s)
	}
	return
}

// String returns a short description of this survey
func (o *Survey) String() string {
	return io.Sf("Survey{type=%q nsrc=%d ndata=%d len=%g}", o.Type, len(o.Srcs), o.NumData(), o.Len)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// proj maps a 3D electrode location onto {distance-along-line, z}
func (o *Survey) proj(p []float64) []float64 {
	if p == nil {
		return nil
	}
	s := (p[0]-o.End0[0])*o.Dirx + (p[1]-o.End0[1])*o.Diry
	return []float64{s, p[2]}
}

func sq(x float64) float64 { return x * x }

func dist(a, b []float64) (d float64) {
	for i := 0; i < len(a); i++ {
		d += sq(a[i] - b[i])
	}
	return math.Sqrt(d)
}
