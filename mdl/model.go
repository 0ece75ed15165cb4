// Copyright 2017 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements conductivity model builders
package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/krismaclennan/simpeg/msh"
)

// Sphere defines a spherical conductivity anomaly
type Sphere struct {
	C   []float64 `json:"c"`   // centre coordinates
	R   float64   `json:"r"`   // radius
	Sig float64   `json:"sig"` // conductivity [S/m]
}

// Contains tells whether point (x,y,z) is inside this sphere
func (o *Sphere) Contains(x, y, z float64) bool {
	dx, dy, dz := x-o.C[0], y-o.C[1], z-o.C[2]
	return dx*dx+dy*dy+dz*dz <= o.R*o.R
}

// Conductivity builds a cell-centred conductivity field: background value
// everywhere, then each sphere overriding the cells whose centre falls
// inside it, in order.
func Conductivity(m *msh.Mesh, sigBck float64, spheres []*Sphere) (sig []float64) {
	if sigBck <= 0 {
		chk.Panic("background conductivity must be positive. sigbck=%g is invalid", sigBck)
	}
	sig = make([]float64, m.NumCells())
	for c := 0; c < len(sig); c++ {
		sig[c] = sigBck
	}
	for _, sph := range spheres {
		if len(sph.C) != 3 {
			chk.Panic("sphere centre must have 3 coordinates. c=%v is invalid", sph.C)
		}
		if sph.R <= 0 || sph.Sig <= 0 {
			chk.Panic("sphere radius and conductivity must be positive. r=%g sig=%g", sph.R, sph.Sig)
		}
		for k := 0; k < m.Nz; k++ {
			for j := 0; j < m.Ny; j++ {
				for i := 0; i < m.Nx; i++ {
					if sph.Contains(m.Cx[i], m.Cy[j], m.Cz[k]) {
						sig[m.CellIndex(i, j, k)] = sph.Sig
					}
				}
			}
		}
	}
	return
}
